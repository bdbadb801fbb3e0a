package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapWithCode 以指定错误码包装底层错误
func WrapWithCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal         = 50000 // 内部错误
	ErrCodeDatabaseError    = 50001 // 数据库错误
	ErrCodeRedisError       = 50002 // Redis错误
	ErrCodeStoreUnavailable = 50003 // 存储不可用（连接不上或超时）
	ErrCodeIDContention     = 50004 // 订单号分配竞争重试耗尽
	ErrCodeMediaError       = 50005 // 图片服务调用失败

	// 资源错误（40400-40499）
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeProductNotFound  = 40401 // 商品不存在
	ErrCodeCategoryNotFound = 40402 // 分类不存在
	ErrCodeOrderNotFound    = 40403 // 订单不存在
	ErrCodeSlideNotFound    = 40404 // 轮播图不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError  = 40000 // 业务错误(通用)
	ErrCodeNameDuplicate  = 40003 // 名称已存在
	ErrCodeInvalidStatus  = 40004 // 状态非法
	ErrCodeIDExhausted    = 40005 // 当日订单号用尽
	ErrCodeDuplicateEntry = 40009 // 重复记录(通用)
	ErrCodeIDTaken        = 40010 // 订单号已被占用（内部哨兵，触发重试）

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal         = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError    = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError       = New(ErrCodeRedisError, "缓存服务错误")
	ErrStoreUnavailable = New(ErrCodeStoreUnavailable, "存储服务暂时不可用")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
