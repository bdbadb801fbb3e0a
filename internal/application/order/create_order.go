package order

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/order"
	"github.com/xiebiao/shopadmin/internal/domain/product"
	"github.com/xiebiao/shopadmin/pkg/metrics"
)

// EventPublisher 订单事件发布接口（pkg/mq.Publisher实现）
// 应用层只依赖接口，MQ未启用时注入nil即可
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// CacheInvalidator 统计缓存失效接口
// 订单写操作后失效仪表盘缓存，让统计尽快反映新数据
type CacheInvalidator interface {
	InvalidateDashboard(ctx context.Context) error
}

// CreateOrderUseCase 创建订单用例
// 这是整个项目最核心的用例：订单号分配的并发正确性都在这条链路上
type CreateOrderUseCase struct {
	orderRepo   order.Repository
	productRepo product.Repository
	allocator   *order.IDAllocator
	publisher   EventPublisher   // 可为nil
	cache       CacheInvalidator // 可为nil
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	productRepo product.Repository,
	publisher EventPublisher,
	cache CacheInvalidator,
) *CreateOrderUseCase {
	allocator := order.NewIDAllocator(orderRepo)
	allocator.OnConflict = func() {
		metrics.IncCounter(metrics.OrderIDConflictsTotal)
	}
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		allocator:   allocator,
		publisher:   publisher,
		cache:       cache,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	Customer       CustomerInfo
	Items          []CreateOrderItem
	DeliveryCharge int64 // 运费（分）
	PaymentMode    string
	Notes          string
}

// CustomerInfo 客户信息
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
}

// CreateOrderItem 订单明细项
type CreateOrderItem struct {
	ProductID uint
	Quantity  int
}

// Execute 执行下单用例
// 流程：
//  1. 参数校验（明细非空、数量为正、支付方式合法、客户信息完整）
//  2. 读取商品做名称/价格快照（商品后续改价不影响本单）
//  3. 分配器分配订单号并持久化（唯一索引+有界重试保证不重号）
//  4. 失效统计缓存、发布order.created事件（两者失败不影响下单结果）
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*order.Order, error) {
	start := time.Now()

	if len(req.Items) == 0 {
		return nil, order.ErrInvalidOrderItems
	}
	mode := order.PaymentMode(req.PaymentMode)
	if !mode.Valid() {
		return nil, order.ErrInvalidPaymentMode
	}
	if err := validateCustomer(req.Customer); err != nil {
		return nil, err
	}
	if req.DeliveryCharge < 0 {
		return nil, order.ErrInvalidOrderItems
	}

	// 读取商品快照，特价优先于售价
	items := make([]order.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
		p, err := uc.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		price := p.Price
		if p.SpecialPrice != nil {
			price = *p.SpecialPrice
		}
		items = append(items, order.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			Price:       price,
		})
	}

	customer := order.Customer{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
		City:    req.Customer.City,
		State:   req.Customer.State,
		Pincode: req.Customer.Pincode,
	}

	o := order.NewOrder(customer, items, 0, req.DeliveryCharge, 0, mode, req.Notes)
	o.Subtotal = o.CalculateSubtotal()
	o.TotalAmount = o.Subtotal + o.DeliveryCharge

	// 分配订单号并持久化，日期取当前服务器本地时间
	if _, err := uc.allocator.Allocate(ctx, time.Now(), o); err != nil {
		metrics.IncCounterVec(metrics.OrderIDAllocationsTotal,
			map[string]string{"result": allocationResult(err)})
		return nil, err
	}
	metrics.IncCounterVec(metrics.OrderIDAllocationsTotal,
		map[string]string{"result": "success"})
	metrics.ObserveHistogram(metrics.OrderCreationDuration, time.Since(start).Seconds())

	uc.afterWrite(ctx, o, "order.created")
	return o, nil
}

// afterWrite 订单落库后的副作用：缓存失效和事件发布
// 都是尽力而为，失败只记日志不影响已创建的订单
func (uc *CreateOrderUseCase) afterWrite(ctx context.Context, o *order.Order, routingKey string) {
	if uc.cache != nil {
		if err := uc.cache.InvalidateDashboard(ctx); err != nil {
			log.Printf("失效统计缓存失败: %v", err)
		}
	}
	if uc.publisher != nil {
		event := NewOrderEvent(o)
		if err := uc.publisher.Publish(ctx, routingKey, event); err != nil {
			log.Printf("发布订单事件失败 [%s]: %v", routingKey, err)
		}
	}
}

func validateCustomer(c CustomerInfo) error {
	if c.Name == "" || c.Email == "" || c.Phone == "" ||
		c.Address == "" || c.City == "" || c.State == "" || c.Pincode == "" {
		return order.ErrInvalidCustomer
	}
	return nil
}

// allocationResult 把分配失败映射为监控标签值
func allocationResult(err error) string {
	switch err {
	case order.ErrOrderIDContention:
		return "contention"
	case order.ErrOrderIDExhausted:
		return "exhausted"
	default:
		return "store_error"
	}
}
