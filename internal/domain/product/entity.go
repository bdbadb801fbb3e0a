package product

import (
	"time"
)

// ProductStatus 商品状态（草稿/已发布）
type ProductStatus string

const (
	StatusDraft     ProductStatus = "draft"
	StatusPublished ProductStatus = "published"
)

// Valid 校验商品状态
func (s ProductStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Product 商品实体
// 1. 价格统一使用int64存储"分"（避免浮点精度问题）
// 2. SpecialPrice为空表示无特价
// 3. Images等切片字段由存储层以JSON列保存
type Product struct {
	ID           uint
	Name         string
	Description  string
	CategoryID   uint
	Category     *CategoryRef // 列表查询时预加载的分类摘要，可为nil
	MRP          int64        // 市场指导价（分）
	Price        int64        // 售价（分）
	SpecialPrice *int64       // 特价（分），nil表示无特价
	Images       []string
	Tags         []string
	Colors       []string
	Sizes        []string
	IsVisible    bool
	IsNewArrival bool
	Status       ProductStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryRef 商品携带的分类摘要（避免跨聚合引用完整实体）
type CategoryRef struct {
	ID          uint
	Name        string
	Description string
}

// ListParams 商品列表查询参数
type ListParams struct {
	CategoryID uint          // 0表示不过滤
	Status     ProductStatus // 空表示不过滤
	NewArrival bool          // true表示只要新品
	Visible    bool          // true表示只要可见商品
	Page       int
	PageSize   int
}

// UpdateFields 批量更新时允许修改的字段集合
// map形式：只更新出现的键，区分"未传"和"置零"
type UpdateFields map[string]interface{}
