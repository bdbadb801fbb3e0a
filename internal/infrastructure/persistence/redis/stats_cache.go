package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/shopadmin/internal/domain/stats"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// 仪表盘统计缓存Key，单条即可（统计是全局的，没有维度）
const dashboardCacheKey = "stats:dashboard"

// StatsCache 仪表盘统计缓存
// 设计说明：
// 1. 统计查询要跨多张表做聚合，开销大，用短TTL缓存兜住高频刷新
// 2. 缓存只是加速，Redis故障时调用方应降级为直查数据库
// 3. Key设计：stats:dashboard，TTL默认60秒
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache 创建统计缓存
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// GetDashboard 读取缓存的仪表盘统计
// 缓存未命中返回(nil, nil)，调用方回源数据库
func (c *StatsCache) GetDashboard(ctx context.Context) (*stats.Dashboard, error) {
	data, err := c.client.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // 未命中
		}
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, "读取统计缓存失败")
	}

	var d stats.Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		// 缓存内容损坏，当作未命中处理
		return nil, nil
	}
	return &d, nil
}

// SetDashboard 写入仪表盘统计缓存
func (c *StatsCache) SetDashboard(ctx context.Context, d *stats.Dashboard) error {
	data, err := json.Marshal(d)
	if err != nil {
		return apperrors.Wrap(err, "序列化统计数据失败")
	}

	if err := c.client.Set(ctx, dashboardCacheKey, data, c.ttl).Err(); err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, "写入统计缓存失败")
	}
	return nil
}

// InvalidateDashboard 主动失效仪表盘缓存
// 订单创建、状态变更后调用，让下一次查询拿到新数据
func (c *StatsCache) InvalidateDashboard(ctx context.Context) error {
	if err := c.client.Del(ctx, dashboardCacheKey).Err(); err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeRedisError, "失效统计缓存失败")
	}
	return nil
}
