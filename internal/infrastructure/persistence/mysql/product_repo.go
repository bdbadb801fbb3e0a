package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/shopadmin/internal/domain/product"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// productRepository 商品仓储的MySQL实现
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

// Create 创建商品
func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建商品失败")
	}
	p.ID = model.ID
	return nil
}

// FindByID 根据ID查找商品（预加载分类摘要）
func (r *productRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	err := r.db.WithContext(ctx).Preload("Category").First(&model, id).Error
	if err != nil {
		if isNotFoundError(err) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "查询商品失败")
	}
	return toProductEntity(&model), nil
}

// Update 整体更新商品
// 使用Select("*")强制写入零值字段（如IsVisible=false、SpecialPrice=nil）
func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)
	model.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Model(&ProductModel{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新商品失败")
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// Delete 删除商品
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ProductModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除商品失败")
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// List 按过滤条件分页查询，按创建时间倒序
func (r *productRepository) List(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&ProductModel{})

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", string(params.Status))
	}
	if params.NewArrival {
		query = query.Where("is_new_arrival = ?", true)
	}
	if params.Visible {
		query = query.Where("is_visible = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计商品数量失败")
	}

	var models []ProductModel
	offset := (params.Page - 1) * params.PageSize
	err := query.Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(params.PageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询商品列表失败")
	}

	products := make([]*product.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductEntity(&models[i]))
	}
	return products, total, nil
}

// Search 按关键词搜索名称/描述/标签
// 标签存储为JSON数组，LIKE匹配序列化后的文本即可覆盖
func (r *productRepository) Search(ctx context.Context, keyword string, limit int) ([]*product.Product, error) {
	pattern := "%" + keyword + "%"

	var models []ProductModel
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("name LIKE ? OR description LIKE ? OR tags LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索商品失败")
	}

	products := make([]*product.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductEntity(&models[i]))
	}
	return products, nil
}

// SetVisibility 设置可见性，返回更新后的商品
func (r *productRepository) SetVisibility(ctx context.Context, id uint, visible bool) (*product.Product, error) {
	result := r.db.WithContext(ctx).Model(&ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_visible": visible,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, apperrors.Wrap(result.Error, "更新商品可见性失败")
	}
	if result.RowsAffected == 0 {
		return nil, product.ErrProductNotFound
	}
	return r.FindByID(ctx, id)
}

// DeleteMany 批量删除，返回实际删除数量
func (r *productRepository) DeleteMany(ctx context.Context, ids []uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&ProductModel{}, ids)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "批量删除商品失败")
	}
	return result.RowsAffected, nil
}

// UpdateMany 批量更新指定字段，返回实际更新数量
// updates的键由application层白名单校验，这里直接映射为列名
func (r *productRepository) UpdateMany(ctx context.Context, ids []uint, updates product.UpdateFields) (int64, error) {
	fields := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		fields[k] = v
	}
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&ProductModel{}).
		Where("id IN ?", ids).
		Updates(fields)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "批量更新商品失败")
	}
	return result.RowsAffected, nil
}

// toProductModel 领域实体转数据模型
func toProductModel(p *product.Product) *ProductModel {
	return &ProductModel{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		MRP:          p.MRP,
		Price:        p.Price,
		SpecialPrice: p.SpecialPrice,
		Images:       p.Images,
		Tags:         p.Tags,
		Colors:       p.Colors,
		Sizes:        p.Sizes,
		IsVisible:    p.IsVisible,
		IsNewArrival: p.IsNewArrival,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// toProductEntity 数据模型转领域实体
func toProductEntity(m *ProductModel) *product.Product {
	p := &product.Product{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		CategoryID:   m.CategoryID,
		MRP:          m.MRP,
		Price:        m.Price,
		SpecialPrice: m.SpecialPrice,
		Images:       m.Images,
		Tags:         m.Tags,
		Colors:       m.Colors,
		Sizes:        m.Sizes,
		IsVisible:    m.IsVisible,
		IsNewArrival: m.IsNewArrival,
		Status:       product.ProductStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Category != nil {
		p.Category = &product.CategoryRef{
			ID:          m.Category.ID,
			Name:        m.Category.Name,
			Description: m.Category.Description,
		}
	}
	return p
}
