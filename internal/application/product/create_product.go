package product

import (
	"context"
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/category"
	"github.com/xiebiao/shopadmin/internal/domain/product"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// CreateProductUseCase 创建商品用例
type CreateProductUseCase struct {
	productRepo  product.Repository
	categoryRepo category.Repository
}

// NewCreateProductUseCase 创建商品创建用例
func NewCreateProductUseCase(productRepo product.Repository, categoryRepo category.Repository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductRequest 创建商品请求DTO
// 价格字段单位为分
type CreateProductRequest struct {
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
	IsVisible    *bool // nil取默认true
	IsNewArrival bool
	Status       string // 空取默认published
}

// Execute 创建商品
func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (*product.Product, error) {
	if req.Name == "" || req.Description == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "商品名称和描述不能为空")
	}
	if req.MRP <= 0 || req.Price <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须为正数")
	}
	if req.SpecialPrice != nil && *req.SpecialPrice <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "特价必须为正数")
	}

	status := product.StatusPublished
	if req.Status != "" {
		status = product.ProductStatus(req.Status)
		if !status.Valid() {
			return nil, product.ErrInvalidStatus
		}
	}

	// 分类必须存在
	if _, err := uc.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	now := time.Now()
	p := &product.Product{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		MRP:          req.MRP,
		Price:        req.Price,
		SpecialPrice: req.SpecialPrice,
		Images:       req.Images,
		Tags:         req.Tags,
		Colors:       req.Colors,
		Sizes:        req.Sizes,
		IsVisible:    visible,
		IsNewArrival: req.IsNewArrival,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.productRepo.FindByID(ctx, p.ID)
}
