package product

import (
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "商品不存在")

	// ErrInvalidStatus 商品状态非法
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidStatus, "商品状态非法")

	// ErrEmptyIDList 批量操作的ID列表为空
	ErrEmptyIDList = apperrors.New(apperrors.ErrCodeInvalidParams, "商品ID列表不能为空")

	// ErrEmptyUpdates 批量更新的字段集合为空
	ErrEmptyUpdates = apperrors.New(apperrors.ErrCodeInvalidParams, "更新字段不能为空")

	// ErrEmptyKeyword 搜索关键词为空
	ErrEmptyKeyword = apperrors.New(apperrors.ErrCodeInvalidParams, "搜索关键词不能为空")
)
