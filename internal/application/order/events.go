package order

import (
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/order"
)

// OrderEvent 发往MQ的订单事件载荷
// 下游（通知、对账等）只需要订单摘要，不携带完整明细
type OrderEvent struct {
	OrderID       string    `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalAmount   int64     `json:"total_amount"`
	PaymentMode   string    `json:"payment_mode"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewOrderEvent 从订单实体构造事件载荷
func NewOrderEvent(o *order.Order) *OrderEvent {
	return &OrderEvent{
		OrderID:       o.OrderID,
		CustomerName:  o.Customer.Name,
		CustomerEmail: o.Customer.Email,
		TotalAmount:   o.TotalAmount,
		PaymentMode:   string(o.PaymentMode),
		PaymentStatus: o.PaymentStatus.String(),
		Status:        o.Status.String(),
		OccurredAt:    time.Now(),
	}
}
