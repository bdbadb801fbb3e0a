package product

import (
	"context"
)

// Repository 商品仓储接口
type Repository interface {
	// Create 创建商品
	Create(ctx context.Context, p *Product) error

	// FindByID 根据ID查找商品
	FindByID(ctx context.Context, id uint) (*Product, error)

	// Update 整体更新商品
	Update(ctx context.Context, p *Product) error

	// Delete 删除商品
	Delete(ctx context.Context, id uint) error

	// List 按过滤条件分页查询，预加载分类摘要，按创建时间倒序
	List(ctx context.Context, params ListParams) ([]*Product, int64, error)

	// Search 按关键词搜索名称/描述/标签，最多返回limit条
	Search(ctx context.Context, keyword string, limit int) ([]*Product, error)

	// SetVisibility 设置可见性，返回更新后的商品
	SetVisibility(ctx context.Context, id uint, visible bool) (*Product, error)

	// DeleteMany 批量删除，返回实际删除数量
	DeleteMany(ctx context.Context, ids []uint) (int64, error)

	// UpdateMany 批量更新指定字段，返回实际更新数量
	UpdateMany(ctx context.Context, ids []uint, updates UpdateFields) (int64, error)
}
