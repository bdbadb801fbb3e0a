package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一索引冲突错误
// GORM v2在配置了TranslateError时返回gorm.ErrDuplicatedKey，
// 否则回退到MySQL错误1062的文本特征判断
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "Error 1062")
}

// isNotFoundError 判断是否为记录不存在错误
func isNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
