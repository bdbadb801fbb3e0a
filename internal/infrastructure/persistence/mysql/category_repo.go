package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/shopadmin/internal/domain/category"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// categoryRepository 分类仓储的MySQL实现
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

// Create 创建分类，名称唯一键冲突返回ErrNameDuplicate
func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrNameDuplicate
		}
		return apperrors.Wrap(err, "创建分类失败")
	}
	c.ID = model.ID
	return nil
}

// FindByID 根据ID查找分类
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if isNotFoundError(err) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

// Update 整体更新分类，改名撞唯一键同样返回ErrNameDuplicate
func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	model.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Model(&CategoryModel{}).
		Where("id = ?", c.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return category.ErrNameDuplicate
		}
		return apperrors.Wrap(result.Error, "更新分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// Delete 删除分类
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&CategoryModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// List 查询分类，按展示顺序升序
func (r *categoryRepository) List(ctx context.Context, mainPageOnly bool) ([]*category.Category, error) {
	query := r.db.WithContext(ctx).Model(&CategoryModel{})
	if mainPageOnly {
		query = query.Where("show_on_main_page = ?", true)
	}

	var models []CategoryModel
	if err := query.Order("display_order ASC, id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, 0, len(models))
	for i := range models {
		categories = append(categories, toCategoryEntity(&models[i]))
	}
	return categories, nil
}

// toCategoryModel 领域实体转数据模型
func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		ShowOnMainPage: c.ShowOnMainPage,
		DisplayOrder:   c.DisplayOrder,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// toCategoryEntity 数据模型转领域实体
func toCategoryEntity(m *CategoryModel) *category.Category {
	return &category.Category{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		ShowOnMainPage: m.ShowOnMainPage,
		DisplayOrder:   m.DisplayOrder,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
