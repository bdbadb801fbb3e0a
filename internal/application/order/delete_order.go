package order

import (
	"context"
	"log"

	"github.com/xiebiao/shopadmin/internal/domain/order"
)

// DeleteOrderUseCase 删除订单用例
// 注意：删除当日最大号订单后，该序号可能被后续订单复用——
// 唯一性约束只作用于现存订单
type DeleteOrderUseCase struct {
	orderRepo order.Repository
	cache     CacheInvalidator // 可为nil
}

// NewDeleteOrderUseCase 创建删除订单用例
func NewDeleteOrderUseCase(orderRepo order.Repository, cache CacheInvalidator) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{orderRepo: orderRepo, cache: cache}
}

// Execute 删除订单
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateDashboard(ctx); err != nil {
			log.Printf("失效统计缓存失败: %v", err)
		}
	}
	return nil
}
