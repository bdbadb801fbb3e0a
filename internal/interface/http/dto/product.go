package dto

import (
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/product"
)

// CreateProductRequest 创建商品请求
// 价格字段单位为分
type CreateProductRequest struct {
	Name         string   `json:"name" binding:"required,max=200"`
	Description  string   `json:"description" binding:"required"`
	CategoryID   uint     `json:"category_id" binding:"required"`
	MRP          int64    `json:"mrp" binding:"required,gt=0"`
	Price        int64    `json:"price" binding:"required,gt=0"`
	SpecialPrice *int64   `json:"special_price"`
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
	Colors       []string `json:"colors"`
	Sizes        []string `json:"sizes"`
	IsVisible    *bool    `json:"is_visible"`
	IsNewArrival bool     `json:"is_new_arrival"`
	Status       string   `json:"status" binding:"omitempty,oneof=draft published"`
}

// UpdateProductRequest 更新商品请求（整体更新）
type UpdateProductRequest struct {
	Name         string   `json:"name" binding:"required,max=200"`
	Description  string   `json:"description" binding:"required"`
	CategoryID   uint     `json:"category_id" binding:"required"`
	MRP          int64    `json:"mrp" binding:"required,gt=0"`
	Price        int64    `json:"price" binding:"required,gt=0"`
	SpecialPrice *int64   `json:"special_price"`
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
	Colors       []string `json:"colors"`
	Sizes        []string `json:"sizes"`
	IsVisible    bool     `json:"is_visible"`
	IsNewArrival bool     `json:"is_new_arrival"`
	Status       string   `json:"status" binding:"required,oneof=draft published"`
}

// SetVisibilityRequest 切换商品可见性请求
type SetVisibilityRequest struct {
	IsVisible *bool `json:"is_visible" binding:"required"`
}

// BulkDeleteRequest 批量删除请求
type BulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// BulkUpdateRequest 批量更新请求
type BulkUpdateRequest struct {
	IDs     []uint                 `json:"ids" binding:"required,min=1"`
	Updates map[string]interface{} `json:"updates" binding:"required"`
}

// CategoryRefResponse 商品携带的分类摘要
type CategoryRefResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProductResponse 商品响应
type ProductResponse struct {
	ID               uint                 `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	CategoryID       uint                 `json:"category_id"`
	Category         *CategoryRefResponse `json:"category,omitempty"`
	MRP              int64                `json:"mrp"`
	MRPYuan          string               `json:"mrp_yuan"`
	Price            int64                `json:"price"`
	PriceYuan        string               `json:"price_yuan"`
	SpecialPrice     *int64               `json:"special_price,omitempty"`
	SpecialPriceYuan string               `json:"special_price_yuan,omitempty"`
	Images           []string             `json:"images"`
	Tags             []string             `json:"tags"`
	Colors           []string             `json:"colors"`
	Sizes            []string             `json:"sizes"`
	IsVisible        bool                 `json:"is_visible"`
	IsNewArrival     bool                 `json:"is_new_arrival"`
	Status           string               `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// ToProductResponse 领域实体转响应DTO
func ToProductResponse(p *product.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		MRP:          p.MRP,
		MRPYuan:      FormatPriceYuan(p.MRP),
		Price:        p.Price,
		PriceYuan:    FormatPriceYuan(p.Price),
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
	if p.SpecialPrice != nil {
		resp.SpecialPriceYuan = FormatPriceYuan(*p.SpecialPrice)
	}
	if p.Category != nil {
		resp.Category = &CategoryRefResponse{
			ID:          p.Category.ID,
			Name:        p.Category.Name,
			Description: p.Category.Description,
		}
	}
	return resp
}

// ToProductResponses 批量转换
func ToProductResponses(products []*product.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
