package carousel

import (
	"context"
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/carousel"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// ManageSlidesUseCase 轮播图管理用例
type ManageSlidesUseCase struct {
	slideRepo carousel.Repository
}

// NewManageSlidesUseCase 创建轮播图管理用例
func NewManageSlidesUseCase(slideRepo carousel.Repository) *ManageSlidesUseCase {
	return &ManageSlidesUseCase{slideRepo: slideRepo}
}

// SlideRequest 轮播图创建/更新请求DTO
type SlideRequest struct {
	Title       string
	ImageURL    string
	Description string
	ButtonTitle string // 空取默认"Shop Now"
	ButtonLink  string
	Order       int
	IsActive    *bool // nil取默认true
}

// Create 创建轮播图
func (uc *ManageSlidesUseCase) Create(ctx context.Context, req SlideRequest) (*carousel.Slide, error) {
	if req.Title == "" || req.ImageURL == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "标题和图片不能为空")
	}

	buttonTitle := req.ButtonTitle
	if buttonTitle == "" {
		buttonTitle = carousel.DefaultButtonTitle
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now()
	s := &carousel.Slide{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		ButtonTitle: buttonTitle,
		ButtonLink:  req.ButtonLink,
		Order:       req.Order,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.slideRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get 查询轮播图详情
func (uc *ManageSlidesUseCase) Get(ctx context.Context, id uint) (*carousel.Slide, error) {
	return uc.slideRepo.FindByID(ctx, id)
}

// List 查询轮播图列表
func (uc *ManageSlidesUseCase) List(ctx context.Context, activeOnly bool) ([]*carousel.Slide, error) {
	return uc.slideRepo.List(ctx, activeOnly)
}

// Update 更新轮播图
func (uc *ManageSlidesUseCase) Update(ctx context.Context, id uint, req SlideRequest) (*carousel.Slide, error) {
	if req.Title == "" || req.ImageURL == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "标题和图片不能为空")
	}

	existing, err := uc.slideRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.ImageURL = req.ImageURL
	existing.Description = req.Description
	if req.ButtonTitle != "" {
		existing.ButtonTitle = req.ButtonTitle
	}
	existing.ButtonLink = req.ButtonLink
	existing.Order = req.Order
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := uc.slideRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete 删除轮播图
func (uc *ManageSlidesUseCase) Delete(ctx context.Context, id uint) error {
	return uc.slideRepo.Delete(ctx, id)
}

// SetActive 切换启用状态
func (uc *ManageSlidesUseCase) SetActive(ctx context.Context, id uint, active bool) (*carousel.Slide, error) {
	return uc.slideRepo.SetActive(ctx, id, active)
}
