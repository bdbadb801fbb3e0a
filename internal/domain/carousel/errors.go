package carousel

import (
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// ErrSlideNotFound 轮播图不存在
var ErrSlideNotFound = apperrors.New(apperrors.ErrCodeSlideNotFound, "轮播图不存在")
