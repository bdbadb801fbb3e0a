// Package media 封装ImageKit图片托管服务的REST调用
// 设计说明：
// 1. 上传走 upload.imagekit.io，管理接口走 api.imagekit.io，私钥做Basic认证
// 2. 外部依赖不可控，所有调用包一层熔断器，故障时快速失败
// 3. 前端直传所需的签名参数（token/expire/signature）在服务端计算，私钥不出后端
package media

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/xiebiao/shopadmin/internal/infrastructure/config"
	"github.com/xiebiao/shopadmin/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
	"github.com/xiebiao/shopadmin/pkg/metrics"
)

const (
	uploadEndpoint = "https://upload.imagekit.io/api/v1/files/upload"
	filesEndpoint  = "https://api.imagekit.io/v1/files"

	// 前端直传签名有效期
	authParamsTTL = 30 * time.Minute
)

// UploadResult ImageKit上传结果
type UploadResult struct {
	FileID       string `json:"fileId"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Size         int64  `json:"size"`
	FileType     string `json:"fileType"`
}

// AuthParams 前端直传所需的签名参数
type AuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// ImageKitClient ImageKit客户端
type ImageKitClient struct {
	cfg        config.ImageKitConfig
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewImageKitClient 创建ImageKit客户端
func NewImageKitClient(cfg config.ImageKitConfig) *ImageKitClient {
	breaker := circuitbreaker.NewCircuitBreaker("imagekit", circuitbreaker.Config{
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			// 连续5次失败后熔断
			return counts.ConsecutiveFailures >= 5
		},
	})
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})

	return &ImageKitClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: breaker,
	}
}

// Configured 凭据是否已配置，未配置时上传接口返回明确错误而不是panic
func (c *ImageKitClient) Configured() bool {
	return c.cfg.Configured()
}

// Upload 上传图片
// fileName是期望的文件名，folder形如"/products"，空字符串表示根目录
func (c *ImageKitClient) Upload(ctx context.Context, fileName string, data []byte, folder string) (*UploadResult, error) {
	if !c.Configured() {
		return nil, apperrors.New(apperrors.ErrCodeMediaError, "图片服务未配置")
	}

	var result *UploadResult
	err := c.breaker.Execute(func() error {
		var execErr error
		result, execErr = c.doUpload(ctx, fileName, data, folder)
		return execErr
	})
	if err != nil {
		metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": "imagekit", "result": "failure"})
		if err == circuitbreaker.ErrOpenState {
			return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "图片服务暂时不可用")
		}
		return nil, err
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": "imagekit", "result": "success"})
	return result, nil
}

func (c *ImageKitClient) doUpload(ctx context.Context, fileName string, data []byte, folder string) (*UploadResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "构造上传请求失败")
	}
	if _, err := part.Write(data); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "构造上传请求失败")
	}
	_ = writer.WriteField("fileName", fileName)
	_ = writer.WriteField("useUniqueFileName", "true")
	if folder != "" {
		_ = writer.WriteField("folder", folder)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "构造上传请求失败")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadEndpoint, body)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "构造上传请求失败")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetBasicAuth(c.cfg.PrivateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "调用图片服务失败")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "读取图片服务响应失败")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.ErrCodeMediaError,
			fmt.Sprintf("图片上传失败: HTTP %d: %s", resp.StatusCode, truncate(respBody, 200)))
	}

	var result UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "解析图片服务响应失败")
	}
	return &result, nil
}

// Delete 删除已上传的图片
func (c *ImageKitClient) Delete(ctx context.Context, fileID string) error {
	if !c.Configured() {
		return apperrors.New(apperrors.ErrCodeMediaError, "图片服务未配置")
	}

	err := c.breaker.Execute(func() error {
		return c.doDelete(ctx, fileID)
	})
	if err != nil {
		metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": "imagekit", "result": "failure"})
		if err == circuitbreaker.ErrOpenState {
			return apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "图片服务暂时不可用")
		}
		return err
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": "imagekit", "result": "success"})
	return nil
}

func (c *ImageKitClient) doDelete(ctx context.Context, fileID string) error {
	url := fmt.Sprintf("%s/%s", filesEndpoint, fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "构造删除请求失败")
	}
	req.SetBasicAuth(c.cfg.PrivateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "调用图片服务失败")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return apperrors.New(apperrors.ErrCodeMediaError,
			fmt.Sprintf("图片删除失败: HTTP %d: %s", resp.StatusCode, truncate(respBody, 200)))
	}
	return nil
}

// AuthenticationParams 生成前端直传所需的签名参数
// 算法与ImageKit官方SDK一致：signature = HMAC-SHA1(token + expire, privateKey)
func (c *ImageKitClient) AuthenticationParams() (*AuthParams, error) {
	if !c.Configured() {
		return nil, apperrors.New(apperrors.ErrCodeMediaError, "图片服务未配置")
	}

	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.ErrCodeMediaError, "生成上传令牌失败")
	}
	token := hex.EncodeToString(tokenBytes)
	expire := time.Now().Add(authParamsTTL).Unix()

	mac := hmac.New(sha1.New, []byte(c.cfg.PrivateKey))
	mac.Write([]byte(fmt.Sprintf("%s%d", token, expire)))
	signature := hex.EncodeToString(mac.Sum(nil))

	return &AuthParams{
		Token:     token,
		Expire:    expire,
		Signature: signature,
	}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
