package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(handle func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	handle(c)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		body = nil
	}
	return w, body
}

// TestOK 成功响应：payload字段平铺到顶层
func TestOK(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		OK(c, gin.H{"products": []string{}, "total": 0})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, body)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "products")
	assert.Contains(t, body, "total")
	// 成功且无提示时不输出message字段
	assert.NotContains(t, body, "message")
}

// TestCreated 创建成功响应
func TestCreated(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		Created(c, "创建成功", gin.H{"order": gin.H{"id": 1}})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "创建成功", body["message"])
}

// TestError_StatusMapping 业务错误码到HTTP状态码的映射
func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "资源不存在→404",
			err:        apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "名称重复→409",
			err:        apperrors.New(apperrors.ErrCodeNameDuplicate, "同名分类已存在"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "参数错误→400",
			err:        apperrors.New(apperrors.ErrCodeInvalidParams, "参数错误"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "订单号用尽→400",
			err:        apperrors.New(apperrors.ErrCodeIDExhausted, "当日订单号已用尽"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "存储不可用→503",
			err:        apperrors.New(apperrors.ErrCodeStoreUnavailable, "存储服务暂时不可用"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "分配竞争耗尽→500",
			err:        apperrors.New(apperrors.ErrCodeIDContention, "订单号分配冲突，请重试"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "非AppError→500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := record(func(c *gin.Context) {
				Error(c, tt.err)
			})
			assert.Equal(t, tt.wantStatus, w.Code)
			require.NotNil(t, body)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

// TestError_HidesInternalCause 包装的底层错误不出现在响应里
func TestError_HidesInternalCause(t *testing.T) {
	wrapped := apperrors.WrapWithCode(errors.New("dial tcp: connection refused"),
		apperrors.ErrCodeStoreUnavailable, "存储服务暂时不可用")

	w, body := record(func(c *gin.Context) {
		Error(c, wrapped)
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "存储服务暂时不可用", body["message"])
	assert.NotContains(t, w.Body.String(), "connection refused")
}
