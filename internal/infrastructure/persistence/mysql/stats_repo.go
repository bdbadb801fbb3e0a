package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/shopadmin/internal/domain/order"
	"github.com/xiebiao/shopadmin/internal/domain/stats"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// statsRepository 统计查询的MySQL实现
// 全部聚合下推到数据库执行，避免把大表拉到内存
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository 创建统计仓储
func NewStatsRepository(db *gorm.DB) stats.Repository {
	return &statsRepository{db: db}
}

const recentOrderLimit = 5

// Dashboard 仪表盘总览统计
func (r *statsRepository) Dashboard(ctx context.Context) (*stats.Dashboard, error) {
	d := &stats.Dashboard{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&ProductModel{}).Count(&d.TotalProducts).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计商品总数失败")
	}
	if err := db.Model(&CategoryModel{}).Count(&d.TotalCategories).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计分类总数失败")
	}
	if err := db.Model(&OrderModel{}).Count(&d.TotalOrders).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计订单总数失败")
	}
	if err := db.Model(&ProductModel{}).
		Where("is_new_arrival = ?", true).
		Count(&d.NewArrivals).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计新品数量失败")
	}

	// 营收只计已送达订单
	if err := db.Model(&OrderModel{}).
		Where("status = ?", int(order.OrderStatusDelivered)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&d.TotalRevenue).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计总营收失败")
	}

	monthAgo := time.Now().AddDate(0, 0, -30)
	if err := db.Model(&OrderModel{}).
		Where("created_at >= ?", monthAgo).
		Count(&d.LastMonthOrders).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计近30天订单数失败")
	}
	if err := db.Model(&OrderModel{}).
		Where("status = ? AND created_at >= ?", int(order.OrderStatusDelivered), monthAgo).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&d.LastMonthRevenue).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计近30天营收失败")
	}

	var statusRows []struct {
		Status int
		Count  int64
	}
	if err := db.Model(&OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, apperrors.Wrap(err, "按状态统计订单失败")
	}
	for _, row := range statusRows {
		d.OrdersByStatus = append(d.OrdersByStatus, stats.StatusCount{
			Status: order.OrderStatus(row.Status).String(),
			Count:  row.Count,
		})
	}

	var recent []OrderModel
	if err := db.Model(&OrderModel{}).
		Order("created_at DESC").
		Limit(recentOrderLimit).
		Find(&recent).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询最近订单失败")
	}
	for i := range recent {
		d.RecentOrders = append(d.RecentOrders, stats.RecentOrder{
			OrderID:      recent[i].OrderID,
			CustomerName: recent[i].Customer.Name,
			TotalAmount:  recent[i].TotalAmount,
			Status:       order.OrderStatus(recent[i].Status).String(),
			CreatedAt:    recent[i].CreatedAt,
		})
	}

	return d, nil
}

// Products 商品维度统计
func (r *statsRepository) Products(ctx context.Context) (*stats.ProductStats, error) {
	p := &stats.ProductStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&ProductModel{}).Count(&p.TotalProducts).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计商品总数失败")
	}
	if err := db.Model(&ProductModel{}).
		Where("is_visible = ?", true).
		Count(&p.VisibleProducts).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计可见商品失败")
	}
	p.HiddenProducts = p.TotalProducts - p.VisibleProducts

	if err := db.Model(&ProductModel{}).
		Where("status = ?", "published").
		Count(&p.PublishedProducts).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计已发布商品失败")
	}
	p.DraftProducts = p.TotalProducts - p.PublishedProducts

	var rows []struct {
		CategoryID   uint
		CategoryName string
		Count        int64
	}
	err := db.Model(&ProductModel{}).
		Select("products.category_id, categories.name AS category_name, COUNT(*) AS count").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Group("products.category_id, categories.name").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按分类统计商品失败")
	}
	for _, row := range rows {
		p.ProductsByCategory = append(p.ProductsByCategory, stats.CategoryCount{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Count:        row.Count,
		})
	}

	return p, nil
}

// Sales 销售统计，start/end为nil时不限时间范围
func (r *statsRepository) Sales(ctx context.Context, start, end *time.Time) (*stats.SalesStats, error) {
	s := &stats.SalesStats{}

	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&OrderModel{})
		if start != nil {
			q = q.Where("created_at >= ?", *start)
		}
		if end != nil {
			q = q.Where("created_at <= ?", *end)
		}
		return q
	}

	if err := scope().Count(&s.TotalOrders).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计订单数失败")
	}

	// 销售额只计已送达订单
	if err := scope().
		Where("status = ?", int(order.OrderStatusDelivered)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&s.TotalSales).Error; err != nil {
		return nil, apperrors.Wrap(err, "统计销售额失败")
	}

	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalSales / s.TotalOrders
	}

	var rows []struct {
		PaymentMode string
		TotalSales  int64
		Count       int64
	}
	err := scope().
		Select("payment_mode, COALESCE(SUM(total_amount), 0) AS total_sales, COUNT(*) AS count").
		Group("payment_mode").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按支付方式统计失败")
	}
	for _, row := range rows {
		s.SalesByPaymentMode = append(s.SalesByPaymentMode, stats.PaymentModeSales{
			PaymentMode: row.PaymentMode,
			TotalSales:  row.TotalSales,
			Count:       row.Count,
		})
	}

	return s, nil
}
