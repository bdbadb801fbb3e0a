package category

import (
	"context"
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/category"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// ManageCategoriesUseCase 分类管理用例
// 分类的增删改查都是简单流程，合并为一个用例
type ManageCategoriesUseCase struct {
	categoryRepo category.Repository
}

// NewManageCategoriesUseCase 创建分类管理用例
func NewManageCategoriesUseCase(categoryRepo category.Repository) *ManageCategoriesUseCase {
	return &ManageCategoriesUseCase{categoryRepo: categoryRepo}
}

// CategoryRequest 分类创建/更新请求DTO
type CategoryRequest struct {
	Name           string
	Description    string
	ShowOnMainPage *bool // nil取默认true
	DisplayOrder   int
}

// Create 创建分类，名称重复返回ErrNameDuplicate
func (uc *ManageCategoriesUseCase) Create(ctx context.Context, req CategoryRequest) (*category.Category, error) {
	if req.Name == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")
	}

	showOnMainPage := true
	if req.ShowOnMainPage != nil {
		showOnMainPage = *req.ShowOnMainPage
	}

	now := time.Now()
	c := &category.Category{
		Name:           req.Name,
		Description:    req.Description,
		ShowOnMainPage: showOnMainPage,
		DisplayOrder:   req.DisplayOrder,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get 查询分类详情
func (uc *ManageCategoriesUseCase) Get(ctx context.Context, id uint) (*category.Category, error) {
	return uc.categoryRepo.FindByID(ctx, id)
}

// List 查询分类列表
func (uc *ManageCategoriesUseCase) List(ctx context.Context, mainPageOnly bool) ([]*category.Category, error) {
	return uc.categoryRepo.List(ctx, mainPageOnly)
}

// Update 更新分类
func (uc *ManageCategoriesUseCase) Update(ctx context.Context, id uint, req CategoryRequest) (*category.Category, error) {
	if req.Name == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称不能为空")
	}

	existing, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	if req.ShowOnMainPage != nil {
		existing.ShowOnMainPage = *req.ShowOnMainPage
	}
	existing.DisplayOrder = req.DisplayOrder

	if err := uc.categoryRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 删除分类
// 不级联删除商品：关联商品的category_id会悬空，由前端在删除前确认
func (uc *ManageCategoriesUseCase) Delete(ctx context.Context, id uint) error {
	return uc.categoryRepo.Delete(ctx, id)
}
