package dto

import (
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/order"
)

// CustomerRequest 下单客户信息
type CustomerRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Address string `json:"address" binding:"required,max=500"`
	City    string `json:"city" binding:"required,max=100"`
	State   string `json:"state" binding:"required,max=100"`
	Pincode string `json:"pincode" binding:"required,max=10"`
}

// OrderItemRequest 下单明细项
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	Customer       CustomerRequest    `json:"customer" binding:"required"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	DeliveryCharge int64              `json:"delivery_charge" binding:"gte=0"`
	PaymentMode    string             `json:"payment_mode" binding:"required,oneof=COD Online"`
	Notes          string             `json:"notes" binding:"max=1000"`
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending shipped delivered cancelled"`
}

// UpdatePaymentStatusRequest 更新支付状态请求
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=Pending Paid Failed"`
}

// CustomerResponse 订单内的客户信息
type CustomerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// OrderItemResponse 订单明细响应
type OrderItemResponse struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	PriceYuan   string `json:"price_yuan"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID              uint                `json:"id"`
	OrderID         string              `json:"order_id"`
	Customer        CustomerResponse    `json:"customer"`
	Items           []OrderItemResponse `json:"items"`
	Subtotal        int64               `json:"subtotal"`
	SubtotalYuan    string              `json:"subtotal_yuan"`
	DeliveryCharge  int64               `json:"delivery_charge"`
	TotalAmount     int64               `json:"total_amount"`
	TotalAmountYuan string              `json:"total_amount_yuan"`
	PaymentMode     string              `json:"payment_mode"`
	PaymentStatus   string              `json:"payment_status"`
	Status          string              `json:"status"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ToOrderResponse 领域实体转响应DTO
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			PriceYuan:   FormatPriceYuan(item.Price),
		})
	}
	return &OrderResponse{
		ID:      o.ID,
		OrderID: o.OrderID,
		Customer: CustomerResponse{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
			City:    o.Customer.City,
			State:   o.Customer.State,
			Pincode: o.Customer.Pincode,
		},
		Items:           items,
		Subtotal:        o.Subtotal,
		SubtotalYuan:    FormatPriceYuan(o.Subtotal),
		DeliveryCharge:  o.DeliveryCharge,
		TotalAmount:     o.TotalAmount,
		TotalAmountYuan: FormatPriceYuan(o.TotalAmount),
		PaymentMode:     string(o.PaymentMode),
		PaymentStatus:   o.PaymentStatus.String(),
		Status:          o.Status.String(),
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToOrderResponses 批量转换
func ToOrderResponses(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
