package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/shopadmin/internal/domain/carousel"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// carouselRepository 轮播图仓储的MySQL实现
type carouselRepository struct {
	db *gorm.DB
}

// NewCarouselRepository 创建轮播图仓储
func NewCarouselRepository(db *gorm.DB) carousel.Repository {
	return &carouselRepository{db: db}
}

// Create 创建轮播图
func (r *carouselRepository) Create(ctx context.Context, s *carousel.Slide) error {
	model := toSlideModel(s)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建轮播图失败")
	}
	s.ID = model.ID
	return nil
}

// FindByID 根据ID查找轮播图
func (r *carouselRepository) FindByID(ctx context.Context, id uint) (*carousel.Slide, error) {
	var model CarouselSlideModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if isNotFoundError(err) {
			return nil, carousel.ErrSlideNotFound
		}
		return nil, apperrors.Wrap(err, "查询轮播图失败")
	}
	return toSlideEntity(&model), nil
}

// Update 整体更新轮播图
func (r *carouselRepository) Update(ctx context.Context, s *carousel.Slide) error {
	model := toSlideModel(s)
	model.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Model(&CarouselSlideModel{}).
		Where("id = ?", s.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新轮播图失败")
	}
	if result.RowsAffected == 0 {
		return carousel.ErrSlideNotFound
	}
	return nil
}

// Delete 删除轮播图
func (r *carouselRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&CarouselSlideModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除轮播图失败")
	}
	if result.RowsAffected == 0 {
		return carousel.ErrSlideNotFound
	}
	return nil
}

// List 查询轮播图，按展示顺序升序
func (r *carouselRepository) List(ctx context.Context, activeOnly bool) ([]*carousel.Slide, error) {
	query := r.db.WithContext(ctx).Model(&CarouselSlideModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var models []CarouselSlideModel
	if err := query.Order("sort_order ASC, id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询轮播图列表失败")
	}

	slides := make([]*carousel.Slide, 0, len(models))
	for i := range models {
		slides = append(slides, toSlideEntity(&models[i]))
	}
	return slides, nil
}

// SetActive 设置启用状态，返回更新后的轮播图
func (r *carouselRepository) SetActive(ctx context.Context, id uint, active bool) (*carousel.Slide, error) {
	result := r.db.WithContext(ctx).Model(&CarouselSlideModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "更新轮播图状态失败")
	}
	if result.RowsAffected == 0 {
		return nil, carousel.ErrSlideNotFound
	}
	return r.FindByID(ctx, id)
}

// toSlideModel 领域实体转数据模型
func toSlideModel(s *carousel.Slide) *CarouselSlideModel {
	return &CarouselSlideModel{
		ID:          s.ID,
		Title:       s.Title,
		ImageURL:    s.ImageURL,
		Description: s.Description,
		ButtonTitle: s.ButtonTitle,
		ButtonLink:  s.ButtonLink,
		SortOrder:   s.Order,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// toSlideEntity 数据模型转领域实体
func toSlideEntity(m *CarouselSlideModel) *carousel.Slide {
	return &carousel.Slide{
		ID:          m.ID,
		Title:       m.Title,
		ImageURL:    m.ImageURL,
		Description: m.Description,
		ButtonTitle: m.ButtonTitle,
		ButtonLink:  m.ButtonLink,
		Order:       m.SortOrder,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
