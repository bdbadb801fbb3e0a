package dto

import "github.com/xiebiao/shopadmin/internal/infrastructure/media"

// UploadResponse 图片上传响应
type UploadResponse struct {
	FileID       string `json:"file_id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Size         int64  `json:"size"`
	FileType     string `json:"file_type"`
}

// ToUploadResponse 上传结果转响应DTO
func ToUploadResponse(r *media.UploadResult) *UploadResponse {
	return &UploadResponse{
		FileID:       r.FileID,
		Name:         r.Name,
		URL:          r.URL,
		ThumbnailURL: r.ThumbnailURL,
		Size:         r.Size,
		FileType:     r.FileType,
	}
}

// ToUploadResponses 批量上传结果转响应DTO
func ToUploadResponses(results []*media.UploadResult) []*UploadResponse {
	responses := make([]*UploadResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, ToUploadResponse(r))
	}
	return responses
}

// AuthParamsResponse 前端直传签名参数响应
type AuthParamsResponse struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}
