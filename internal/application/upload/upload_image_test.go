package upload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/shopadmin/internal/infrastructure/media"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// fakeUploader 记录透传给图片服务的参数
type fakeUploader struct {
	lastFileName string
	lastFolder   string
	deleted      []string
}

func (u *fakeUploader) Upload(_ context.Context, fileName string, data []byte, folder string) (*media.UploadResult, error) {
	u.lastFileName = fileName
	u.lastFolder = folder
	return &media.UploadResult{FileID: "file_1", Name: fileName, URL: "https://ik.example.com/" + fileName}, nil
}

func (u *fakeUploader) Delete(_ context.Context, fileID string) error {
	u.deleted = append(u.deleted, fileID)
	return nil
}

func (u *fakeUploader) AuthenticationParams() (*media.AuthParams, error) {
	return &media.AuthParams{Token: "tok", Expire: 1700000000, Signature: "sig"}, nil
}

func (u *fakeUploader) Configured() bool { return true }

// TestUploadImage_Success 正常上传：目录自动补前导斜杠
func TestUploadImage_Success(t *testing.T) {
	uploader := &fakeUploader{}
	uc := NewUploadImageUseCase(uploader)

	result, err := uc.Execute(context.Background(), UploadRequest{
		FileName:    "tshirt.jpg",
		ContentType: "image/jpeg",
		Data:        []byte{0xFF, 0xD8, 0xFF},
		Folder:      "products",
	})
	require.NoError(t, err)
	assert.Equal(t, "file_1", result.FileID)
	assert.Equal(t, "tshirt.jpg", uploader.lastFileName)
	assert.Equal(t, "/products", uploader.lastFolder)
}

// TestUploadImage_Validation 上传校验
func TestUploadImage_Validation(t *testing.T) {
	uc := NewUploadImageUseCase(&fakeUploader{})

	tests := []struct {
		name string
		req  UploadRequest
	}{
		{
			name: "空文件",
			req:  UploadRequest{FileName: "a.jpg", ContentType: "image/jpeg"},
		},
		{
			name: "超过5MB",
			req: UploadRequest{
				FileName: "a.jpg", ContentType: "image/jpeg",
				Data: make([]byte, MaxImageSize+1),
			},
		},
		{
			name: "非图片类型",
			req: UploadRequest{
				FileName: "a.pdf", ContentType: "application/pdf",
				Data: []byte("pdf"),
			},
		},
		{
			name: "文件名为空",
			req: UploadRequest{
				ContentType: "image/png", Data: []byte("png"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.Error(t, err)
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
		})
	}
}

// TestUploadBatch 批量上传：数量上限与单张失败整体失败
func TestUploadBatch(t *testing.T) {
	uploader := &fakeUploader{}
	uc := NewUploadImageUseCase(uploader)

	reqs := []UploadRequest{
		{FileName: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		{FileName: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
	}
	results, err := uc.ExecuteBatch(context.Background(), reqs)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// 超过10张拒绝
	many := make([]UploadRequest, MaxBatchSize+1)
	for i := range many {
		many[i] = UploadRequest{FileName: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")}
	}
	_, err = uc.ExecuteBatch(context.Background(), many)
	require.Error(t, err)

	// 其中一张非法则整体失败
	reqs[1].ContentType = "application/pdf"
	_, err = uc.ExecuteBatch(context.Background(), reqs)
	require.Error(t, err)
}

// TestDeleteImage 删除图片
func TestDeleteImage(t *testing.T) {
	uploader := &fakeUploader{}
	uc := NewUploadImageUseCase(uploader)

	require.NoError(t, uc.Delete(context.Background(), "file_1"))
	assert.Equal(t, []string{"file_1"}, uploader.deleted)

	// 空文件ID直接拒绝，不调用图片服务
	err := uc.Delete(context.Background(), "")
	require.Error(t, err)
	assert.Len(t, uploader.deleted, 1)
}
