package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// 订单号格式：ORD-YYYYMMDD-NNNN
// - 日期段取服务器本地日期
// - 序号段4位零填充，每天从0001开始，定宽保证字典序等于数值序
const (
	orderIDTag        = "ORD"
	orderIDDateLayout = "20060102"

	// MaxDailySequence 单日序号上限，用尽即失败，不回绕
	MaxDailySequence = 9999

	// defaultMaxAttempts 唯一键冲突后的重试上限
	// 竞争预期很低，每次重试都重读最新序号，无需退避等待
	defaultMaxAttempts = 5
)

// IDStore 分配器对存储的最小依赖（Repository是它的超集）
type IDStore interface {
	// LastOrderIDForPrefix 前缀下当前最大订单号，无记录返回空串
	LastOrderIDForPrefix(ctx context.Context, prefix string) (string, error)

	// CreateWithOrderID 条件插入，唯一键冲突返回ErrOrderIDTaken
	CreateWithOrderID(ctx context.Context, o *Order) error
}

// IDAllocator 顺序订单号分配器
//
// "读最大值+1再写入"在并发下必然存在竞争：两个请求可能读到同一个
// 最大值并算出相同的下一序号。分配器不依赖读取的准确性保证正确，
// 而是依赖存储层对订单号的唯一约束：写入冲突说明输掉了竞争，重读
// 最新序号再试，重试有界。这是无中心计数器的乐观并发模式，任何
// 情况下都不会返回重复的订单号。
//
// 分配过程中不持有任何进程内锁（存储才是唯一性仲裁者，且可能是
// 分布式的），阻塞只发生在存储I/O上。
type IDAllocator struct {
	store       IDStore
	maxAttempts int

	// OnConflict 每次因唯一键冲突触发重试时回调（用于监控竞争强度），可为nil
	OnConflict func()
}

// NewIDAllocator 创建订单号分配器
func NewIDAllocator(store IDStore) *IDAllocator {
	return &IDAllocator{
		store:       store,
		maxAttempts: defaultMaxAttempts,
	}
}

// DatePrefix 计算某天的订单号前缀，形如"ORD-20250115"
// 只取日期不取时间：同一天的所有订单共享一个序号空间
func DatePrefix(day time.Time) string {
	return fmt.Sprintf("%s-%s", orderIDTag, day.Format(orderIDDateLayout))
}

// FormatOrderID 拼装完整订单号
func FormatOrderID(prefix string, seq int) string {
	return fmt.Sprintf("%s-%04d", prefix, seq)
}

// SequenceOf 解析订单号末尾的4位序号
func SequenceOf(orderID string) (int, error) {
	i := strings.LastIndex(orderID, "-")
	if i < 0 || i == len(orderID)-1 {
		return 0, ErrMalformedOrderID
	}
	seq, err := strconv.Atoi(orderID[i+1:])
	if err != nil || seq < 1 {
		return 0, ErrMalformedOrderID
	}
	return seq, nil
}

// Allocate 为订单o分配当日唯一订单号并持久化
//
// 日期前缀在进入时计算一次并固定：请求跨越午夜重试时仍使用最初
// 捕获的日期，不重新取值。订单号只有在持久化成功后才返回，绝不
// 提前暴露未落库的号。
//
// 错误语义：
//   - ErrOrderIDExhausted：当日序号超过9999
//   - ErrOrderIDContention：重试次数耗尽（仍在竞争中）
//   - 其他：存储读写失败，原样返回
func (a *IDAllocator) Allocate(ctx context.Context, day time.Time, o *Order) (string, error) {
	prefix := DatePrefix(day)

	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		last, err := a.store.LastOrderIDForPrefix(ctx, prefix)
		if err != nil {
			return "", err
		}

		next := 1
		if last != "" {
			seq, err := SequenceOf(last)
			if err != nil {
				return "", err
			}
			next = seq + 1
		}
		if next > MaxDailySequence {
			return "", ErrOrderIDExhausted
		}

		o.OrderID = FormatOrderID(prefix, next)
		err = a.store.CreateWithOrderID(ctx, o)
		if err == nil {
			return o.OrderID, nil
		}
		if !errors.Is(err, ErrOrderIDTaken) {
			o.OrderID = ""
			return "", err
		}

		// 另一个并发请求抢先占用了这个序号，重读后再试
		if a.OnConflict != nil {
			a.OnConflict()
		}
	}

	o.OrderID = ""
	return "", ErrOrderIDContention
}
