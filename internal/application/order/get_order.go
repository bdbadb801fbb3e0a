package order

import (
	"context"
	"strings"

	"github.com/xiebiao/shopadmin/internal/domain/order"
)

// GetOrderUseCase 订单查询用例
// 同时支持按存储主键和按业务订单号（ORD-开头）查询
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单查询用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// ByID 根据存储主键查询订单
func (uc *GetOrderUseCase) ByID(ctx context.Context, id uint) (*order.Order, error) {
	return uc.orderRepo.FindByID(ctx, id)
}

// ByOrderID 根据业务订单号查询订单
func (uc *GetOrderUseCase) ByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	if !strings.HasPrefix(orderID, "ORD-") {
		return nil, order.ErrMalformedOrderID
	}
	return uc.orderRepo.FindByOrderID(ctx, orderID)
}
