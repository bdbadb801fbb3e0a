package order

import (
	"context"
	"log"

	"github.com/xiebiao/shopadmin/internal/domain/order"
)

// UpdateOrderUseCase 订单状态更新用例
// 状态流转没有强约束（管理员可任意改），但取值必须合法
type UpdateOrderUseCase struct {
	orderRepo order.Repository
	publisher EventPublisher   // 可为nil
	cache     CacheInvalidator // 可为nil
}

// NewUpdateOrderUseCase 创建订单更新用例
func NewUpdateOrderUseCase(orderRepo order.Repository, publisher EventPublisher, cache CacheInvalidator) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo: orderRepo,
		publisher: publisher,
		cache:     cache,
	}
}

// UpdateStatus 更新订单状态，返回更新后的订单
func (uc *UpdateOrderUseCase) UpdateStatus(ctx context.Context, id uint, status string) (*order.Order, error) {
	parsed, err := order.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, o, "order.status_changed")
	return o, nil
}

// UpdatePaymentStatus 更新支付状态，返回更新后的订单
func (uc *UpdateOrderUseCase) UpdatePaymentStatus(ctx context.Context, id uint, status string) (*order.Order, error) {
	parsed, err := order.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.UpdatePaymentStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, o, "order.payment_changed")
	return o, nil
}

func (uc *UpdateOrderUseCase) notify(ctx context.Context, o *order.Order, routingKey string) {
	if uc.cache != nil {
		if err := uc.cache.InvalidateDashboard(ctx); err != nil {
			log.Printf("失效统计缓存失败: %v", err)
		}
	}
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, routingKey, NewOrderEvent(o)); err != nil {
			log.Printf("发布订单事件失败 [%s]: %v", routingKey, err)
		}
	}
}
