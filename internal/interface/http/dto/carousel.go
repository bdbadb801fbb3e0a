package dto

import (
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/carousel"
)

// SlideRequest 轮播图创建/更新请求
type SlideRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	ImageURL    string `json:"image_url" binding:"required,url"`
	Description string `json:"description" binding:"max=500"`
	ButtonTitle string `json:"button_title" binding:"max=50"`
	ButtonLink  string `json:"button_link" binding:"max=500"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

// SetActiveRequest 切换轮播图启用状态请求
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SlideResponse 轮播图响应
type SlideResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description,omitempty"`
	ButtonTitle string    `json:"button_title"`
	ButtonLink  string    `json:"button_link,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToSlideResponse 领域实体转响应DTO
func ToSlideResponse(s *carousel.Slide) *SlideResponse {
	return &SlideResponse{
		ID:          s.ID,
		Title:       s.Title,
		ImageURL:    s.ImageURL,
		Description: s.Description,
		ButtonTitle: s.ButtonTitle,
		ButtonLink:  s.ButtonLink,
		Order:       s.Order,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSlideResponses 批量转换
func ToSlideResponses(slides []*carousel.Slide) []*SlideResponse {
	out := make([]*SlideResponse, 0, len(slides))
	for _, s := range slides {
		out = append(out, ToSlideResponse(s))
	}
	return out
}
