package category

import (
	"time"
)

// Category 分类实体
// Name有存储层唯一约束，重复创建返回ErrNameDuplicate
type Category struct {
	ID             uint
	Name           string
	Description    string
	ShowOnMainPage bool
	DisplayOrder   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
