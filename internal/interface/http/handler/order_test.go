package handler

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apporder "github.com/xiebiao/shopadmin/internal/application/order"
	"github.com/xiebiao/shopadmin/internal/domain/order"
	"github.com/xiebiao/shopadmin/internal/domain/product"
)

// memOrderRepo 内存版订单仓储，map键唯一性模拟订单号唯一约束
type memOrderRepo struct {
	mu     sync.Mutex
	nextID uint
	orders map[string]*order.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*order.Order)}
}

func (r *memOrderRepo) CreateWithOrderID(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.OrderID]; ok {
		return order.ErrOrderIDTaken
	}
	r.nextID++
	o.ID = r.nextID
	r.orders[o.OrderID] = o
	return nil
}

func (r *memOrderRepo) LastOrderIDForPrefix(_ context.Context, prefix string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	last := ""
	for id := range r.orders {
		if len(id) > len(prefix) && id[:len(prefix)] == prefix && id > last {
			last = id
		}
	}
	return last, nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *memOrderRepo) FindByOrderID(_ context.Context, orderID string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o, ok := r.orders[orderID]; ok {
		return o, nil
	}
	return nil, order.ErrOrderNotFound
}

func (r *memOrderRepo) UpdateStatus(ctx context.Context, id uint, status order.OrderStatus) (*order.Order, error) {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

func (r *memOrderRepo) UpdatePaymentStatus(ctx context.Context, id uint, status order.PaymentStatus) (*order.Order, error) {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.PaymentStatus = status
	return o, nil
}

func (r *memOrderRepo) Delete(ctx context.Context, id uint) error {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, o.OrderID)
	return nil
}

func (r *memOrderRepo) List(_ context.Context, _ order.ListParams) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

// memProductRepo 只实现下单链路用到的FindByID
type memProductRepo struct {
	products map[uint]*product.Product
}

func (r *memProductRepo) FindByID(_ context.Context, id uint) (*product.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, product.ErrProductNotFound
}

func (r *memProductRepo) Create(_ context.Context, _ *product.Product) error { return nil }
func (r *memProductRepo) Update(_ context.Context, _ *product.Product) error { return nil }
func (r *memProductRepo) Delete(_ context.Context, _ uint) error             { return nil }

func (r *memProductRepo) List(_ context.Context, _ product.ListParams) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func (r *memProductRepo) Search(_ context.Context, _ string, _ int) ([]*product.Product, error) {
	return nil, nil
}

func (r *memProductRepo) SetVisibility(_ context.Context, _ uint, _ bool) (*product.Product, error) {
	return nil, product.ErrProductNotFound
}

func (r *memProductRepo) DeleteMany(_ context.Context, _ []uint) (int64, error) {
	return 0, nil
}

func (r *memProductRepo) UpdateMany(_ context.Context, _ []uint, _ product.UpdateFields) (int64, error) {
	return 0, nil
}

func newOrderRouter(orderRepo *memOrderRepo, productRepo *memProductRepo) *gin.Engine {
	h := NewOrderHandler(
		apporder.NewCreateOrderUseCase(orderRepo, productRepo, nil, nil),
		apporder.NewGetOrderUseCase(orderRepo),
		apporder.NewListOrdersUseCase(orderRepo),
		apporder.NewUpdateOrderUseCase(orderRepo, nil, nil),
		apporder.NewDeleteOrderUseCase(orderRepo, nil),
	)

	r := gin.New()
	orders := r.Group("/api/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/order-id/:orderId", h.GetByOrderID)
		orders.GET("/:id", h.Get)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.PATCH("/:id/payment-status", h.UpdatePaymentStatus)
		orders.DELETE("/:id", h.Delete)
	}
	return r
}

func validOrderPayload() gin.H {
	return gin.H{
		"customer": gin.H{
			"name": "张三", "email": "zhangsan@example.com", "phone": "13800138000",
			"address": "人民路1号", "city": "上海", "state": "上海", "pincode": "200000",
		},
		"items":           []gin.H{{"product_id": 1, "quantity": 2}},
		"delivery_charge": 1000,
		"payment_mode":    "COD",
	}
}

// TestOrderAPI_Create 下单端到端：订单号格式、金额换算、初始状态
func TestOrderAPI_Create(t *testing.T) {
	orderRepo := newMemOrderRepo()
	productRepo := &memProductRepo{products: map[uint]*product.Product{
		1: {ID: 1, Name: "白色T恤", Price: 5900},
	}}
	r := newOrderRouter(orderRepo, productRepo)

	w, body := doJSON(t, r, http.MethodPost, "/api/orders", validOrderPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	o := body["order"].(map[string]interface{})
	expectedID := fmt.Sprintf("ORD-%s-0001", time.Now().Format("20060102"))
	assert.Equal(t, expectedID, o["order_id"])
	assert.Equal(t, float64(12800), o["total_amount"])
	assert.Equal(t, "128.00", o["total_amount_yuan"])
	assert.Equal(t, "pending", o["status"])
	assert.Equal(t, "Pending", o["payment_status"])

	// 第二单序号递增
	w, body = doJSON(t, r, http.MethodPost, "/api/orders", validOrderPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	o = body["order"].(map[string]interface{})
	assert.Equal(t, fmt.Sprintf("ORD-%s-0002", time.Now().Format("20060102")), o["order_id"])
}

// TestOrderAPI_CreateValidation 绑定层校验直接400，不触发分配
func TestOrderAPI_CreateValidation(t *testing.T) {
	r := newOrderRouter(newMemOrderRepo(), &memProductRepo{})

	// 支付方式非法
	payload := validOrderPayload()
	payload["payment_mode"] = "Alipay"
	w, _ := doJSON(t, r, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 明细为空
	payload = validOrderPayload()
	payload["items"] = []gin.H{}
	w, _ = doJSON(t, r, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 邮箱格式错误
	payload = validOrderPayload()
	payload["customer"].(gin.H)["email"] = "not-an-email"
	w, _ = doJSON(t, r, http.MethodPost, "/api/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestOrderAPI_GetByOrderID 按业务订单号查询
func TestOrderAPI_GetByOrderID(t *testing.T) {
	orderRepo := newMemOrderRepo()
	productRepo := &memProductRepo{products: map[uint]*product.Product{
		1: {ID: 1, Name: "白色T恤", Price: 5900},
	}}
	r := newOrderRouter(orderRepo, productRepo)

	w, body := doJSON(t, r, http.MethodPost, "/api/orders", validOrderPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := body["order"].(map[string]interface{})["order_id"].(string)

	w, body = doJSON(t, r, http.MethodGet, "/api/orders/order-id/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, orderID, body["order"].(map[string]interface{})["order_id"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/orders/order-id/ORD-20990101-0001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestOrderAPI_StatusFlow 状态更新接口
func TestOrderAPI_StatusFlow(t *testing.T) {
	orderRepo := newMemOrderRepo()
	productRepo := &memProductRepo{products: map[uint]*product.Product{
		1: {ID: 1, Name: "白色T恤", Price: 5900},
	}}
	r := newOrderRouter(orderRepo, productRepo)

	w, _ := doJSON(t, r, http.MethodPost, "/api/orders", validOrderPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shipped", body["order"].(map[string]interface{})["status"])

	w, body = doJSON(t, r, http.MethodPatch, "/api/orders/1/payment-status", gin.H{"payment_status": "Paid"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Paid", body["order"].(map[string]interface{})["payment_status"])

	// 绑定层拒绝非法状态值
	w, _ = doJSON(t, r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "delivering"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
