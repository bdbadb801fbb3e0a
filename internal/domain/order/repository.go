package order

import (
	"context"
	"time"
)

// ListParams 订单列表查询参数
type ListParams struct {
	Status      *OrderStatus // nil表示不过滤
	PaymentMode PaymentMode  // 空表示不过滤
	StartDate   *time.Time
	EndDate     *time.Time
	Page        int
	PageSize    int
}

// Repository 订单仓储接口（由domain层定义，infrastructure层实现）
//
// 实现必须在存储层对OrderID声明唯一约束——分配器的正确性依赖
// 这个约束，而不是依赖读到的最大值准确
type Repository interface {
	// CreateWithOrderID 插入订单（含明细）
	// 订单号唯一键冲突时必须返回ErrOrderIDTaken（且不产生任何写入），
	// 其他存储错误原样包装返回
	CreateWithOrderID(ctx context.Context, o *Order) error

	// LastOrderIDForPrefix 查询指定日期前缀下当前最大的订单号
	// 前缀形如"ORD-20250115"；没有匹配记录时返回空字符串
	LastOrderIDForPrefix(ctx context.Context, prefix string) (string, error)

	// FindByID 根据存储主键查找订单（包含明细）
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderID 根据业务订单号查找订单
	FindByOrderID(ctx context.Context, orderID string) (*Order, error)

	// UpdateStatus 更新订单状态
	UpdateStatus(ctx context.Context, id uint, status OrderStatus) (*Order, error)

	// UpdatePaymentStatus 更新支付状态
	UpdatePaymentStatus(ctx context.Context, id uint, status PaymentStatus) (*Order, error)

	// Delete 删除订单
	Delete(ctx context.Context, id uint) error

	// List 按过滤条件分页查询订单，按创建时间倒序
	List(ctx context.Context, params ListParams) ([]*Order, int64, error)
}
