package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类，名称唯一键冲突返回ErrNameDuplicate
	Create(ctx context.Context, c *Category) error

	// FindByID 根据ID查找分类
	FindByID(ctx context.Context, id uint) (*Category, error)

	// Update 整体更新分类
	Update(ctx context.Context, c *Category) error

	// Delete 删除分类
	Delete(ctx context.Context, id uint) error

	// List 查询分类，按DisplayOrder升序
	// mainPageOnly为true时只返回首页展示的分类
	List(ctx context.Context, mainPageOnly bool) ([]*Category, error)
}
