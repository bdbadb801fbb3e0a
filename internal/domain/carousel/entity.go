package carousel

import (
	"time"
)

// DefaultButtonTitle 轮播图按钮的默认文案
const DefaultButtonTitle = "Shop Now"

// Slide 首页轮播图实体
type Slide struct {
	ID          uint
	Title       string
	ImageURL    string
	Description string
	ButtonTitle string
	ButtonLink  string
	Order       int // 展示顺序，小的在前
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
