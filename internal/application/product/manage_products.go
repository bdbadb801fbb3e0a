package product

import (
	"context"

	"github.com/xiebiao/shopadmin/internal/domain/category"
	"github.com/xiebiao/shopadmin/internal/domain/product"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	searchLimit     = 20
)

// ManageProductsUseCase 商品查询与维护用例
// 查询、更新、删除、可见性切换、搜索这些流程简单，合并为一个用例
type ManageProductsUseCase struct {
	productRepo  product.Repository
	categoryRepo category.Repository
}

// NewManageProductsUseCase 创建商品维护用例
func NewManageProductsUseCase(productRepo product.Repository, categoryRepo category.Repository) *ManageProductsUseCase {
	return &ManageProductsUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListProductsRequest 商品列表请求DTO
type ListProductsRequest struct {
	CategoryID uint
	Status     string
	NewArrival bool
	Visible    bool
	Page       int
	PageSize   int
}

// List 查询商品列表
func (uc *ManageProductsUseCase) List(ctx context.Context, req ListProductsRequest) ([]*product.Product, int64, error) {
	params := product.ListParams{
		CategoryID: req.CategoryID,
		NewArrival: req.NewArrival,
		Visible:    req.Visible,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if req.Status != "" {
		status := product.ProductStatus(req.Status)
		if !status.Valid() {
			return nil, 0, product.ErrInvalidStatus
		}
		params.Status = status
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	return uc.productRepo.List(ctx, params)
}

// Get 查询商品详情
func (uc *ManageProductsUseCase) Get(ctx context.Context, id uint) (*product.Product, error) {
	return uc.productRepo.FindByID(ctx, id)
}

// UpdateProductRequest 更新商品请求DTO
// 整体更新：所有字段都会写入（与创建请求对齐）
type UpdateProductRequest struct {
	Name         string
	Description  string
	CategoryID   uint
	MRP          int64
	Price        int64
	SpecialPrice *int64
	Images       []string
	Tags         []string
	Colors       []string
	Sizes        []string
	IsVisible    bool
	IsNewArrival bool
	Status       string
}

// Update 整体更新商品
func (uc *ManageProductsUseCase) Update(ctx context.Context, id uint, req UpdateProductRequest) (*product.Product, error) {
	if req.Name == "" || req.Description == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "商品名称和描述不能为空")
	}
	if req.MRP <= 0 || req.Price <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须为正数")
	}
	status := product.ProductStatus(req.Status)
	if !status.Valid() {
		return nil, product.ErrInvalidStatus
	}
	if _, err := uc.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	existing, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID
	existing.MRP = req.MRP
	existing.Price = req.Price
	existing.SpecialPrice = req.SpecialPrice
	existing.Images = req.Images
	existing.Tags = req.Tags
	existing.Colors = req.Colors
	existing.Sizes = req.Sizes
	existing.IsVisible = req.IsVisible
	existing.IsNewArrival = req.IsNewArrival
	existing.Status = status

	if err := uc.productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return uc.productRepo.FindByID(ctx, id)
}

// Delete 删除商品
func (uc *ManageProductsUseCase) Delete(ctx context.Context, id uint) error {
	return uc.productRepo.Delete(ctx, id)
}

// SetVisibility 切换商品可见性
func (uc *ManageProductsUseCase) SetVisibility(ctx context.Context, id uint, visible bool) (*product.Product, error) {
	return uc.productRepo.SetVisibility(ctx, id, visible)
}

// Search 按关键词搜索商品
func (uc *ManageProductsUseCase) Search(ctx context.Context, keyword string) ([]*product.Product, error) {
	if keyword == "" {
		return nil, product.ErrEmptyKeyword
	}
	return uc.productRepo.Search(ctx, keyword, searchLimit)
}
