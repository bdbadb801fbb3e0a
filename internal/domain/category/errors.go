package category

import (
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrNameDuplicate 分类名称已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeNameDuplicate, "同名分类已存在")
)
