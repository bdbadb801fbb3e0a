package order

import (
	"time"
)

// OrderStatus 订单状态
// 使用int类型存储（节省空间，便于索引），对外序列化为小写字符串
type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1 // 待处理
	OrderStatusShipped   OrderStatus = 2 // 已发货
	OrderStatusDelivered OrderStatus = 3 // 已送达
	OrderStatusCancelled OrderStatus = 4 // 已取消
)

// String 实现Stringer接口，返回对外的状态值
func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusShipped:
		return "shipped"
	case OrderStatusDelivered:
		return "delivered"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseOrderStatus 解析对外状态值，非法值返回ErrInvalidStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch s {
	case "pending":
		return OrderStatusPending, nil
	case "shipped":
		return OrderStatusShipped, nil
	case "delivered":
		return OrderStatusDelivered, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return 0, ErrInvalidStatus
	}
}

// PaymentStatus 支付状态
type PaymentStatus int

const (
	PaymentStatusPending PaymentStatus = 1 // 待支付
	PaymentStatusPaid    PaymentStatus = 2 // 已支付
	PaymentStatusFailed  PaymentStatus = 3 // 支付失败
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// ParsePaymentStatus 解析对外支付状态值
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "Pending":
		return PaymentStatusPending, nil
	case "Paid":
		return PaymentStatusPaid, nil
	case "Failed":
		return PaymentStatusFailed, nil
	default:
		return 0, ErrInvalidPaymentStatus
	}
}

// PaymentMode 支付方式（货到付款/在线支付）
type PaymentMode string

const (
	PaymentModeCOD    PaymentMode = "COD"
	PaymentModeOnline PaymentMode = "Online"
)

// Valid 校验支付方式
func (m PaymentMode) Valid() bool {
	return m == PaymentModeCOD || m == PaymentModeOnline
}

// Customer 下单客户信息（订单内的值对象，随订单保存快照）
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
}

// OrderItem 订单明细项
// 1. 不是独立聚合根，必须通过Order访问
// 2. ProductName和Price是下单时的快照，商品改名改价不影响历史订单
type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	ProductName string
	Quantity    int
	Price       int64 // 下单时单价（分）
}

// Order 订单实体（聚合根）
// OrderID是业务主键（形如ORD-20250115-0001），由分配器在持久化时赋值，
// 赋值后不可变；数值ID只是存储主键
type Order struct {
	ID             uint
	OrderID        string
	Customer       Customer
	Items          []OrderItem
	Subtotal       int64 // 商品小计（分）
	DeliveryCharge int64 // 运费（分）
	TotalAmount    int64 // 订单总金额（分），冗余字段
	PaymentMode    PaymentMode
	PaymentStatus  PaymentStatus
	Status         OrderStatus
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewOrder 创建新订单（工厂方法）
// 订单号留空，由IDAllocator在持久化时分配
func NewOrder(customer Customer, items []OrderItem, subtotal, deliveryCharge, totalAmount int64, paymentMode PaymentMode, notes string) *Order {
	now := time.Now()
	return &Order{
		Customer:       customer,
		Items:          items,
		Subtotal:       subtotal,
		DeliveryCharge: deliveryCharge,
		TotalAmount:    totalAmount,
		PaymentMode:    paymentMode,
		PaymentStatus:  PaymentStatusPending,
		Status:         OrderStatusPending,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CalculateSubtotal 根据明细实时计算小计
// 用于创建订单时校验前端传递的subtotal是否一致
func (o *Order) CalculateSubtotal() int64 {
	var subtotal int64
	for _, item := range o.Items {
		subtotal += item.Price * int64(item.Quantity)
	}
	return subtotal
}
