package carousel

import (
	"context"
)

// Repository 轮播图仓储接口
type Repository interface {
	// Create 创建轮播图
	Create(ctx context.Context, s *Slide) error

	// FindByID 根据ID查找轮播图
	FindByID(ctx context.Context, id uint) (*Slide, error)

	// Update 整体更新轮播图
	Update(ctx context.Context, s *Slide) error

	// Delete 删除轮播图
	Delete(ctx context.Context, id uint) error

	// List 查询轮播图，按Order升序
	// activeOnly为true时只返回启用中的
	List(ctx context.Context, activeOnly bool) ([]*Slide, error)

	// SetActive 设置启用状态，返回更新后的轮播图
	SetActive(ctx context.Context, id uint, active bool) (*Slide, error)
}
