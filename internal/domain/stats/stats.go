package stats

import (
	"context"
	"time"
)

// Dashboard 仪表盘统计（只读模型，不是聚合根）
type Dashboard struct {
	TotalProducts    int64
	TotalCategories  int64
	TotalOrders      int64
	TotalRevenue     int64 // 已送达订单总金额（分）
	NewArrivals      int64
	LastMonthOrders  int64 // 近30天订单数
	LastMonthRevenue int64 // 近30天已送达订单金额（分）
	OrdersByStatus   []StatusCount
	RecentOrders     []RecentOrder
}

// StatusCount 按状态聚合的订单数量
type StatusCount struct {
	Status string
	Count  int64
}

// RecentOrder 仪表盘展示的最近订单摘要
type RecentOrder struct {
	OrderID      string
	CustomerName string
	TotalAmount  int64
	Status       string
	CreatedAt    time.Time
}

// ProductStats 商品维度统计
type ProductStats struct {
	TotalProducts      int64
	VisibleProducts    int64
	HiddenProducts     int64
	PublishedProducts  int64
	DraftProducts      int64
	ProductsByCategory []CategoryCount
}

// CategoryCount 按分类聚合的商品数量
type CategoryCount struct {
	CategoryID   uint
	CategoryName string
	Count        int64
}

// SalesStats 销售统计
type SalesStats struct {
	TotalOrders        int64
	TotalSales         int64 // 已送达订单销售额（分）
	AverageOrderValue  int64 // 平均客单价（分），订单数为0时为0
	SalesByPaymentMode []PaymentModeSales
}

// PaymentModeSales 按支付方式聚合的销售额
type PaymentModeSales struct {
	PaymentMode string
	TotalSales  int64
	Count       int64
}

// Repository 统计查询接口
// 聚合直接下推到存储层执行，不在内存里扫全表
type Repository interface {
	// Dashboard 仪表盘总览统计
	Dashboard(ctx context.Context) (*Dashboard, error)

	// Products 商品维度统计
	Products(ctx context.Context) (*ProductStats, error)

	// Sales 销售统计，start/end为nil时不限时间范围
	Sales(ctx context.Context, start, end *time.Time) (*SalesStats, error)
}
