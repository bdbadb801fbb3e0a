package order

import (
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidOrderItems 订单明细不合法
	ErrInvalidOrderItems = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")

	// ErrInvalidCustomer 客户信息不完整
	ErrInvalidCustomer = apperrors.New(apperrors.ErrCodeInvalidParams, "客户信息不完整")

	// ErrInvalidStatus 订单状态非法
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidStatus, "订单状态非法")

	// ErrInvalidPaymentStatus 支付状态非法
	ErrInvalidPaymentStatus = apperrors.New(apperrors.ErrCodeInvalidStatus, "支付状态非法")

	// ErrInvalidPaymentMode 支付方式非法
	ErrInvalidPaymentMode = apperrors.New(apperrors.ErrCodeInvalidParams, "支付方式非法")

	// ErrOrderIDTaken 订单号唯一键冲突（并发竞争信号，触发分配器重试，
	// 不直接返回给调用方）
	ErrOrderIDTaken = apperrors.New(apperrors.ErrCodeIDTaken, "订单号已被占用")

	// ErrOrderIDExhausted 当日9999个订单号已用尽，对当天是致命错误
	ErrOrderIDExhausted = apperrors.New(apperrors.ErrCodeIDExhausted, "当日订单号已用尽")

	// ErrOrderIDContention 分配重试次数耗尽（瞬时失败，调用方可整体重试下单）
	ErrOrderIDContention = apperrors.New(apperrors.ErrCodeIDContention, "订单号分配冲突，请重试")

	// ErrMalformedOrderID 存储中的订单号不符合ORD-YYYYMMDD-NNNN格式
	ErrMalformedOrderID = apperrors.New(apperrors.ErrCodeInternal, "订单号格式非法")
)
