package dto

import (
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/stats"
)

// DashboardResponse 仪表盘统计响应
type DashboardResponse struct {
	TotalProducts        int64                 `json:"total_products"`
	TotalCategories      int64                 `json:"total_categories"`
	TotalOrders          int64                 `json:"total_orders"`
	TotalRevenue         int64                 `json:"total_revenue"`
	TotalRevenueYuan     string                `json:"total_revenue_yuan"`
	NewArrivals          int64                 `json:"new_arrivals"`
	LastMonthOrders      int64                 `json:"last_month_orders"`
	LastMonthRevenue     int64                 `json:"last_month_revenue"`
	LastMonthRevenueYuan string                `json:"last_month_revenue_yuan"`
	OrdersByStatus       []StatusCountResponse `json:"orders_by_status"`
	RecentOrders         []RecentOrderResponse `json:"recent_orders"`
}

// StatusCountResponse 按状态聚合的订单数量
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// RecentOrderResponse 最近订单摘要
type RecentOrderResponse struct {
	OrderID         string    `json:"order_id"`
	CustomerName    string    `json:"customer_name"`
	TotalAmount     int64     `json:"total_amount"`
	TotalAmountYuan string    `json:"total_amount_yuan"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToDashboardResponse 统计模型转响应DTO
func ToDashboardResponse(d *stats.Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		TotalProducts:        d.TotalProducts,
		TotalCategories:      d.TotalCategories,
		TotalOrders:          d.TotalOrders,
		TotalRevenue:         d.TotalRevenue,
		TotalRevenueYuan:     FormatPriceYuan(d.TotalRevenue),
		NewArrivals:          d.NewArrivals,
		LastMonthOrders:      d.LastMonthOrders,
		LastMonthRevenue:     d.LastMonthRevenue,
		LastMonthRevenueYuan: FormatPriceYuan(d.LastMonthRevenue),
		OrdersByStatus:       make([]StatusCountResponse, 0, len(d.OrdersByStatus)),
		RecentOrders:         make([]RecentOrderResponse, 0, len(d.RecentOrders)),
	}
	for _, sc := range d.OrdersByStatus {
		resp.OrdersByStatus = append(resp.OrdersByStatus, StatusCountResponse{
			Status: sc.Status,
			Count:  sc.Count,
		})
	}
	for _, ro := range d.RecentOrders {
		resp.RecentOrders = append(resp.RecentOrders, RecentOrderResponse{
			OrderID:         ro.OrderID,
			CustomerName:    ro.CustomerName,
			TotalAmount:     ro.TotalAmount,
			TotalAmountYuan: FormatPriceYuan(ro.TotalAmount),
			Status:          ro.Status,
			CreatedAt:       ro.CreatedAt,
		})
	}
	return resp
}

// ProductStatsResponse 商品维度统计响应
type ProductStatsResponse struct {
	TotalProducts      int64                   `json:"total_products"`
	VisibleProducts    int64                   `json:"visible_products"`
	HiddenProducts     int64                   `json:"hidden_products"`
	PublishedProducts  int64                   `json:"published_products"`
	DraftProducts      int64                   `json:"draft_products"`
	ProductsByCategory []CategoryCountResponse `json:"products_by_category"`
}

// CategoryCountResponse 按分类聚合的商品数量
type CategoryCountResponse struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Count        int64  `json:"count"`
}

// ToProductStatsResponse 统计模型转响应DTO
func ToProductStatsResponse(p *stats.ProductStats) *ProductStatsResponse {
	resp := &ProductStatsResponse{
		TotalProducts:      p.TotalProducts,
		VisibleProducts:    p.VisibleProducts,
		HiddenProducts:     p.HiddenProducts,
		PublishedProducts:  p.PublishedProducts,
		DraftProducts:      p.DraftProducts,
		ProductsByCategory: make([]CategoryCountResponse, 0, len(p.ProductsByCategory)),
	}
	for _, cc := range p.ProductsByCategory {
		resp.ProductsByCategory = append(resp.ProductsByCategory, CategoryCountResponse{
			CategoryID:   cc.CategoryID,
			CategoryName: cc.CategoryName,
			Count:        cc.Count,
		})
	}
	return resp
}

// SalesStatsResponse 销售统计响应
type SalesStatsResponse struct {
	TotalOrders           int64                      `json:"total_orders"`
	TotalSales            int64                      `json:"total_sales"`
	TotalSalesYuan        string                     `json:"total_sales_yuan"`
	AverageOrderValue     int64                      `json:"average_order_value"`
	AverageOrderValueYuan string                     `json:"average_order_value_yuan"`
	SalesByPaymentMode    []PaymentModeSalesResponse `json:"sales_by_payment_mode"`
}

// PaymentModeSalesResponse 按支付方式聚合的销售额
type PaymentModeSalesResponse struct {
	PaymentMode    string `json:"payment_mode"`
	TotalSales     int64  `json:"total_sales"`
	TotalSalesYuan string `json:"total_sales_yuan"`
	Count          int64  `json:"count"`
}

// ToSalesStatsResponse 统计模型转响应DTO
func ToSalesStatsResponse(s *stats.SalesStats) *SalesStatsResponse {
	resp := &SalesStatsResponse{
		TotalOrders:           s.TotalOrders,
		TotalSales:            s.TotalSales,
		TotalSalesYuan:        FormatPriceYuan(s.TotalSales),
		AverageOrderValue:     s.AverageOrderValue,
		AverageOrderValueYuan: FormatPriceYuan(s.AverageOrderValue),
		SalesByPaymentMode:    make([]PaymentModeSalesResponse, 0, len(s.SalesByPaymentMode)),
	}
	for _, pm := range s.SalesByPaymentMode {
		resp.SalesByPaymentMode = append(resp.SalesByPaymentMode, PaymentModeSalesResponse{
			PaymentMode:    pm.PaymentMode,
			TotalSales:     pm.TotalSales,
			TotalSalesYuan: FormatPriceYuan(pm.TotalSales),
			Count:          pm.Count,
		})
	}
	return resp
}
