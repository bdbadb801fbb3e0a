package product

import (
	"context"

	"github.com/xiebiao/shopadmin/internal/domain/product"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// 批量更新允许修改的字段白名单（键为数据库列名）
// 防止调用方通过map更新任意列
var bulkUpdatableFields = map[string]bool{
	"is_visible":     true,
	"is_new_arrival": true,
	"status":         true,
	"category_id":    true,
}

// BulkProductsUseCase 商品批量操作用例
type BulkProductsUseCase struct {
	productRepo product.Repository
}

// NewBulkProductsUseCase 创建批量操作用例
func NewBulkProductsUseCase(productRepo product.Repository) *BulkProductsUseCase {
	return &BulkProductsUseCase{productRepo: productRepo}
}

// DeleteMany 批量删除商品，返回实际删除数量
// 不存在的ID静默跳过，不算错误
func (uc *BulkProductsUseCase) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, product.ErrEmptyIDList
	}
	return uc.productRepo.DeleteMany(ctx, ids)
}

// BulkUpdateRequest 批量更新请求DTO
type BulkUpdateRequest struct {
	IDs     []uint
	Updates map[string]interface{}
}

// UpdateMany 批量更新商品字段，返回实际更新数量
func (uc *BulkProductsUseCase) UpdateMany(ctx context.Context, req BulkUpdateRequest) (int64, error) {
	if len(req.IDs) == 0 {
		return 0, product.ErrEmptyIDList
	}
	if len(req.Updates) == 0 {
		return 0, product.ErrEmptyUpdates
	}

	updates := make(product.UpdateFields, len(req.Updates))
	for key, value := range req.Updates {
		if !bulkUpdatableFields[key] {
			return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "字段不允许批量更新: "+key)
		}
		if key == "status" {
			s, ok := value.(string)
			if !ok || !product.ProductStatus(s).Valid() {
				return 0, product.ErrInvalidStatus
			}
		}
		updates[key] = value
	}

	return uc.productRepo.UpdateMany(ctx, req.IDs, updates)
}
