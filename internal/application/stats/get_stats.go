package stats

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/stats"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// DashboardCache 仪表盘缓存接口（redis.StatsCache实现）
// 缓存未命中返回(nil, nil)
type DashboardCache interface {
	GetDashboard(ctx context.Context) (*stats.Dashboard, error)
	SetDashboard(ctx context.Context, d *stats.Dashboard) error
}

// GetStatsUseCase 统计查询用例
// 仪表盘统计走缓存，Redis故障时降级为直查数据库
type GetStatsUseCase struct {
	statsRepo stats.Repository
	cache     DashboardCache // 可为nil（Redis未配置时）
}

// NewGetStatsUseCase 创建统计查询用例
func NewGetStatsUseCase(statsRepo stats.Repository, cache DashboardCache) *GetStatsUseCase {
	return &GetStatsUseCase{statsRepo: statsRepo, cache: cache}
}

// Dashboard 查询仪表盘统计（Cache-Aside模式）
func (uc *GetStatsUseCase) Dashboard(ctx context.Context) (*stats.Dashboard, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetDashboard(ctx)
		if err != nil {
			// 缓存故障降级为直查，不向上抛
			log.Printf("读取统计缓存失败，直查数据库: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	d, err := uc.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetDashboard(ctx, d); err != nil {
			log.Printf("写入统计缓存失败: %v", err)
		}
	}
	return d, nil
}

// Products 查询商品维度统计
func (uc *GetStatsUseCase) Products(ctx context.Context) (*stats.ProductStats, error) {
	return uc.statsRepo.Products(ctx)
}

// Sales 查询销售统计
// startDate/endDate为空串表示不限时间范围，格式YYYY-MM-DD
func (uc *GetStatsUseCase) Sales(ctx context.Context, startDate, endDate string) (*stats.SalesStats, error) {
	var start, end *time.Time
	if startDate != "" {
		t, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "开始日期格式错误，应为YYYY-MM-DD")
		}
		start = &t
	}
	if endDate != "" {
		t, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "结束日期格式错误，应为YYYY-MM-DD")
		}
		e := t.Add(24*time.Hour - time.Nanosecond)
		end = &e
	}

	return uc.statsRepo.Sales(ctx, start, end)
}
