package order

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/shopadmin/internal/domain/order"
	"github.com/xiebiao/shopadmin/internal/domain/product"
)

// fakeOrderRepo 内存版订单仓储
// 用map模拟订单号唯一约束，重号插入返回ErrOrderIDTaken
type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID uint
	orders map[string]*order.Order

	// createErr 不为nil时CreateWithOrderID固定返回该错误
	createErr error
	// lastErr 不为nil时LastOrderIDForPrefix固定返回该错误
	lastErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*order.Order)}
}

func (r *fakeOrderRepo) CreateWithOrderID(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.orders[o.OrderID]; ok {
		return order.ErrOrderIDTaken
	}
	r.nextID++
	o.ID = r.nextID
	r.orders[o.OrderID] = o
	return nil
}

func (r *fakeOrderRepo) LastOrderIDForPrefix(_ context.Context, prefix string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastErr != nil {
		return "", r.lastErr
	}
	last := ""
	for id := range r.orders {
		if len(id) > len(prefix) && id[:len(prefix)] == prefix && id > last {
			last = id
		}
	}
	return last, nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByOrderID(_ context.Context, orderID string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o, ok := r.orders[orderID]; ok {
		return o, nil
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uint, status order.OrderStatus) (*order.Order, error) {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

func (r *fakeOrderRepo) UpdatePaymentStatus(ctx context.Context, id uint, status order.PaymentStatus) (*order.Order, error) {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.PaymentStatus = status
	return o, nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uint) error {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, o.OrderID)
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, _ order.ListParams) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

// seed 预置订单号，模拟当日已有订单
func (r *fakeOrderRepo) seed(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.nextID++
		r.orders[id] = &order.Order{ID: r.nextID, OrderID: id}
	}
}

// fakeProductRepo 内存版商品仓储，只实现下单链路用到的FindByID
type fakeProductRepo struct {
	products map[uint]*product.Product
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	m := make(map[uint]*product.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uint) (*product.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, product.ErrProductNotFound
}

func (r *fakeProductRepo) Create(_ context.Context, _ *product.Product) error { return nil }
func (r *fakeProductRepo) Update(_ context.Context, _ *product.Product) error { return nil }
func (r *fakeProductRepo) Delete(_ context.Context, _ uint) error             { return nil }

func (r *fakeProductRepo) List(_ context.Context, _ product.ListParams) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) Search(_ context.Context, _ string, _ int) ([]*product.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) SetVisibility(_ context.Context, _ uint, _ bool) (*product.Product, error) {
	return nil, product.ErrProductNotFound
}

func (r *fakeProductRepo) DeleteMany(_ context.Context, _ []uint) (int64, error) {
	return 0, nil
}

func (r *fakeProductRepo) UpdateMany(_ context.Context, _ []uint, _ product.UpdateFields) (int64, error) {
	return 0, nil
}

// fakePublisher 记录发布过的事件
type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, routingKey)
	return nil
}

// fakeCache 记录缓存失效次数
type fakeCache struct {
	mu          sync.Mutex
	invalidated int
}

func (c *fakeCache) InvalidateDashboard(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	return nil
}

func validRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Customer: CustomerInfo{
			Name: "张三", Email: "zhangsan@example.com", Phone: "13800138000",
			Address: "人民路1号", City: "上海", State: "上海", Pincode: "200000",
		},
		Items:          []CreateOrderItem{{ProductID: 1, Quantity: 2}},
		DeliveryCharge: 1000,
		PaymentMode:    "COD",
	}
}

// TestCreateOrder_Success 测试正常下单：订单号格式、价格快照、金额计算
func TestCreateOrder_Success(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(&product.Product{
		ID: 1, Name: "白色T恤", Price: 5900, MRP: 7900,
	})
	publisher := &fakePublisher{}
	cache := &fakeCache{}
	uc := NewCreateOrderUseCase(orderRepo, productRepo, publisher, cache)

	o, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 订单号：当日首单为0001
	expectedID := fmt.Sprintf("ORD-%s-0001", time.Now().Format("20060102"))
	assert.Equal(t, expectedID, o.OrderID)

	// 快照与金额：5900 * 2 + 1000运费
	require.Len(t, o.Items, 1)
	assert.Equal(t, "白色T恤", o.Items[0].ProductName)
	assert.Equal(t, int64(5900), o.Items[0].Price)
	assert.Equal(t, int64(11800), o.Subtotal)
	assert.Equal(t, int64(12800), o.TotalAmount)

	// 初始状态
	assert.Equal(t, order.OrderStatusPending, o.Status)
	assert.Equal(t, order.PaymentStatusPending, o.PaymentStatus)

	// 副作用：缓存失效一次，发布order.created事件
	assert.Equal(t, 1, cache.invalidated)
	assert.Equal(t, []string{"order.created"}, publisher.events)
}

// TestCreateOrder_SpecialPriceWins 有特价时快照使用特价而不是售价
func TestCreateOrder_SpecialPriceWins(t *testing.T) {
	special := int64(3900)
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(&product.Product{
		ID: 1, Name: "白色T恤", Price: 5900, SpecialPrice: &special,
	})
	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, nil)

	o, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3900), o.Items[0].Price)
	assert.Equal(t, int64(8800), o.TotalAmount)
}

// TestCreateOrder_SequenceContinues 当日已有订单时序号接着最大值递增
func TestCreateOrder_SequenceContinues(t *testing.T) {
	today := time.Now().Format("20060102")
	orderRepo := newFakeOrderRepo()
	orderRepo.seed(
		fmt.Sprintf("ORD-%s-0001", today),
		fmt.Sprintf("ORD-%s-0007", today),
	)
	productRepo := newFakeProductRepo(&product.Product{ID: 1, Name: "白色T恤", Price: 5900})
	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, nil)

	o, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORD-%s-0008", today), o.OrderID)
}

// TestCreateOrder_Validation 各类参数校验错误
func TestCreateOrder_Validation(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(&product.Product{ID: 1, Name: "白色T恤", Price: 5900})
	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, nil)

	tests := []struct {
		name    string
		modify  func(*CreateOrderRequest)
		wantErr error
	}{
		{
			name:    "明细为空",
			modify:  func(r *CreateOrderRequest) { r.Items = nil },
			wantErr: order.ErrInvalidOrderItems,
		},
		{
			name:    "支付方式非法",
			modify:  func(r *CreateOrderRequest) { r.PaymentMode = "Alipay" },
			wantErr: order.ErrInvalidPaymentMode,
		},
		{
			name:    "客户信息不完整",
			modify:  func(r *CreateOrderRequest) { r.Customer.Phone = "" },
			wantErr: order.ErrInvalidCustomer,
		},
		{
			name:    "运费为负",
			modify:  func(r *CreateOrderRequest) { r.DeliveryCharge = -1 },
			wantErr: order.ErrInvalidOrderItems,
		},
		{
			name:    "数量为零",
			modify:  func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 },
			wantErr: order.ErrInvalidQuantity,
		},
		{
			name:    "商品不存在",
			modify:  func(r *CreateOrderRequest) { r.Items[0].ProductID = 999 },
			wantErr: product.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestCreateOrder_Contention 存储层持续返回重号时，重试耗尽返回冲突错误
func TestCreateOrder_Contention(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.createErr = order.ErrOrderIDTaken
	productRepo := newFakeProductRepo(&product.Product{ID: 1, Name: "白色T恤", Price: 5900})
	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, order.ErrOrderIDContention)
}

// TestCreateOrder_Exhausted 当日9999号已用尽时下单失败
func TestCreateOrder_Exhausted(t *testing.T) {
	today := time.Now().Format("20060102")
	orderRepo := newFakeOrderRepo()
	orderRepo.seed(fmt.Sprintf("ORD-%s-9999", today))
	productRepo := newFakeProductRepo(&product.Product{ID: 1, Name: "白色T恤", Price: 5900})
	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, order.ErrOrderIDExhausted)
}

// TestCreateOrder_NilSideEffects publisher和cache为nil时下单照常成功
func TestCreateOrder_NilSideEffects(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo(&product.Product{ID: 1, Name: "白色T恤", Price: 5900})
	uc := NewCreateOrderUseCase(orderRepo, productRepo, nil, nil)

	o, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, o.OrderID)
}
