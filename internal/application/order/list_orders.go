package order

import (
	"context"
	"time"

	"github.com/xiebiao/shopadmin/internal/domain/order"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersUseCase 订单列表用例
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersRequest 订单列表请求DTO
// 字符串参数来自query string，空串表示不过滤
type ListOrdersRequest struct {
	Status      string
	PaymentMode string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Page        int
	PageSize    int
}

// Execute 查询订单列表
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) ([]*order.Order, int64, error) {
	params := order.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	if req.Status != "" {
		status, err := order.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, 0, err
		}
		params.Status = &status
	}
	if req.PaymentMode != "" {
		mode := order.PaymentMode(req.PaymentMode)
		if !mode.Valid() {
			return nil, 0, order.ErrInvalidPaymentMode
		}
		params.PaymentMode = mode
	}

	if req.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
		if err != nil {
			return nil, 0, apperrors.New(apperrors.ErrCodeInvalidParams, "开始日期格式错误，应为YYYY-MM-DD")
		}
		params.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
		if err != nil {
			return nil, 0, apperrors.New(apperrors.ErrCodeInvalidParams, "结束日期格式错误，应为YYYY-MM-DD")
		}
		// 结束日期取全天
		end := t.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}

	return uc.orderRepo.List(ctx, params)
}
