package upload

import (
	"context"
	"strings"

	"github.com/xiebiao/shopadmin/internal/infrastructure/media"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// MaxImageSize 单张图片上限5MB
const MaxImageSize = 5 << 20

// ImageUploader 图片服务接口（media.ImageKitClient实现）
type ImageUploader interface {
	Upload(ctx context.Context, fileName string, data []byte, folder string) (*media.UploadResult, error)
	Delete(ctx context.Context, fileID string) error
	AuthenticationParams() (*media.AuthParams, error)
	Configured() bool
}

// UploadImageUseCase 图片上传用例
// 校验在这一层做完，media客户端只负责传输
type UploadImageUseCase struct {
	uploader ImageUploader
}

// NewUploadImageUseCase 创建图片上传用例
func NewUploadImageUseCase(uploader ImageUploader) *UploadImageUseCase {
	return &UploadImageUseCase{uploader: uploader}
}

// UploadRequest 上传请求DTO
type UploadRequest struct {
	FileName    string
	ContentType string
	Data        []byte
	Folder      string // 形如"products"，自动补前导斜杠
}

// Execute 上传图片
// 只接受image/*类型，大小不超过5MB
func (uc *UploadImageUseCase) Execute(ctx context.Context, req UploadRequest) (*media.UploadResult, error) {
	if len(req.Data) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "上传文件为空")
	}
	if len(req.Data) > MaxImageSize {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "图片大小不能超过5MB")
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "只支持图片文件")
	}
	if req.FileName == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "文件名不能为空")
	}

	folder := req.Folder
	if folder != "" && !strings.HasPrefix(folder, "/") {
		folder = "/" + folder
	}

	return uc.uploader.Upload(ctx, req.FileName, req.Data, folder)
}

// MaxBatchSize 一次批量上传最多10张
const MaxBatchSize = 10

// ExecuteBatch 批量上传图片
// 逐张校验后依次上传；任何一张失败即整体失败，已上传的图片不回滚，
// 由调用方按返回结果决定是否清理
func (uc *UploadImageUseCase) ExecuteBatch(ctx context.Context, reqs []UploadRequest) ([]*media.UploadResult, error) {
	if len(reqs) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "上传文件为空")
	}
	if len(reqs) > MaxBatchSize {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "一次最多上传10张图片")
	}

	results := make([]*media.UploadResult, 0, len(reqs))
	for _, req := range reqs {
		result, err := uc.Execute(ctx, req)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Delete 删除已上传的图片
func (uc *UploadImageUseCase) Delete(ctx context.Context, fileID string) error {
	if fileID == "" {
		return apperrors.New(apperrors.ErrCodeInvalidParams, "文件ID不能为空")
	}
	return uc.uploader.Delete(ctx, fileID)
}

// AuthParams 获取前端直传签名参数
func (uc *UploadImageUseCase) AuthParams() (*media.AuthParams, error) {
	return uc.uploader.AuthenticationParams()
}
