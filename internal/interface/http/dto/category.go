package dto

import (
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/category"
)

// CategoryRequest 分类创建/更新请求
type CategoryRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Description    string `json:"description" binding:"max=500"`
	ShowOnMainPage *bool  `json:"show_on_main_page"`
	DisplayOrder   int    `json:"display_order"`
}

// CategoryResponse 分类响应
type CategoryResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	ShowOnMainPage bool      `json:"show_on_main_page"`
	DisplayOrder   int       `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToCategoryResponse 领域实体转响应DTO
func ToCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		ShowOnMainPage: c.ShowOnMainPage,
		DisplayOrder:   c.DisplayOrder,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCategoryResponses 批量转换
func ToCategoryResponses(categories []*category.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
