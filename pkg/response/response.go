package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// 统一响应约定：
// 1. success标记请求是否成功，客户端据此分支
// 2. message在错误和写操作时给出提示
// 3. 资源数据以命名字段平铺在响应顶层（如products、order、stats）
// 4. HTTP状态码区分错误类别（400/404/409/500/503），不把一切都塞进200

// OK 成功响应（200），payload的字段平铺到响应顶层
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, envelope(true, "", payload))
}

// OKWithMessage 带提示的成功响应（200），用于更新、删除等写操作
func OKWithMessage(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusOK, envelope(true, message, payload))
}

// Created 创建成功响应（201）
func Created(c *gin.Context, message string, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(true, message, payload))
}

// Error 错误响应，根据AppError的业务错误码映射HTTP状态码
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	c.JSON(httpStatus(appErr.Code), envelope(false, appErr.Message, nil))
}

// BadRequest 参数错误响应（400）
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope(false, message, nil))
}

// NotFound 资源不存在响应（404）
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, envelope(false, message, nil))
}

// envelope 组装响应体
func envelope(success bool, message string, payload gin.H) gin.H {
	body := gin.H{"success": success}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

// httpStatus 业务错误码 → HTTP状态码
// 错误码区段与pkg/errors保持一致：404xx资源不存在、409xx冲突、
// 400xx/409业务与参数错误、50003存储不可用、其余5xxxx内部错误
func httpStatus(code int) int {
	switch {
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code == apperrors.ErrCodeNameDuplicate || code == apperrors.ErrCodeDuplicateEntry:
		return http.StatusConflict
	case code >= 40000 && code < 50000:
		return http.StatusBadRequest
	case code == apperrors.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
