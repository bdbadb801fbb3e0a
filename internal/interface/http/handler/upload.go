package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	appupload "github.com/xiebiao/shopadmin/internal/application/upload"
	"github.com/xiebiao/shopadmin/internal/interface/http/dto"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
	"github.com/xiebiao/shopadmin/pkg/response"
)

// UploadHandler 图片上传HTTP处理器
type UploadHandler struct {
	uploadUseCase *appupload.UploadImageUseCase
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(uploadUseCase *appupload.UploadImageUseCase) *UploadHandler {
	return &UploadHandler{uploadUseCase: uploadUseCase}
}

// 托管服务上的目录约定
const (
	productImageFolder  = "/shopadmin/products"
	carouselImageFolder = "/shopadmin/carousel"
)

// readImagePart 读取multipart文件并组装上传请求
// 先按声明大小拒绝超限文件，避免读大文件进内存
func readImagePart(fileHeader *multipart.FileHeader, folder string) (appupload.UploadRequest, error) {
	if fileHeader.Size > appupload.MaxImageSize {
		return appupload.UploadRequest{}, apperrors.New(apperrors.ErrCodeInvalidParams, "图片大小不能超过5MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return appupload.UploadRequest{}, apperrors.New(apperrors.ErrCodeInvalidParams, "读取上传文件失败: "+err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, appupload.MaxImageSize+1))
	if err != nil {
		return appupload.UploadRequest{}, apperrors.New(apperrors.ErrCodeInvalidParams, "读取上传文件失败: "+err.Error())
	}

	return appupload.UploadRequest{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Folder:      folder,
	}, nil
}

// Upload 上传单张图片
// @Summary      上传图片
// @Description  代理转发到托管服务，只接受5MB以内的image/*文件
// @Tags         上传
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "图片文件"
// @Param        folder formData string false "目标目录，默认/shopadmin/products"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{} "文件类型或大小不合法"
// @Router       /api/upload/image [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	h.uploadSingle(c, c.PostForm("folder"))
}

// UploadCarousel 上传轮播图图片，目录固定为轮播图专用目录
// @Summary      上传轮播图图片
// @Tags         上传
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "图片文件"
// @Success      201 {object} map[string]interface{}
// @Router       /api/upload/carousel [post]
func (h *UploadHandler) UploadCarousel(c *gin.Context) {
	h.uploadSingle(c, carouselImageFolder)
}

func (h *UploadHandler) uploadSingle(c *gin.Context, folder string) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "缺少上传文件: "+err.Error())
		return
	}
	if folder == "" {
		folder = productImageFolder
	}

	req, err := readImagePart(fileHeader, folder)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uploadUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "图片上传成功", gin.H{"image": dto.ToUploadResponse(result)})
}

// UploadMany 批量上传图片
// @Summary      批量上传图片
// @Description  一次最多10张，任何一张不合法则整体失败
// @Tags         上传
// @Accept       multipart/form-data
// @Produce      json
// @Param        images formData file true "图片文件（可多个）"
// @Param        folder formData string false "目标目录，默认/shopadmin/products"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{} "数量超限或文件不合法"
// @Router       /api/upload/images [post]
func (h *UploadHandler) UploadMany(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "解析上传表单失败: "+err.Error())
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		response.BadRequest(c, "缺少上传文件")
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = productImageFolder
	}

	reqs := make([]appupload.UploadRequest, 0, len(files))
	for _, fileHeader := range files {
		req, err := readImagePart(fileHeader, folder)
		if err != nil {
			response.Error(c, err)
			return
		}
		reqs = append(reqs, req)
	}

	results, err := h.uploadUseCase.ExecuteBatch(c.Request.Context(), reqs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "图片上传成功", gin.H{"images": dto.ToUploadResponses(results)})
}

// Delete 删除图片
// @Summary      删除图片
// @Tags         上传
// @Produce      json
// @Param        fileId path string true "托管服务文件ID"
// @Success      200 {object} map[string]interface{}
// @Router       /api/upload/{fileId} [delete]
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.uploadUseCase.Delete(c.Request.Context(), c.Param("fileId")); err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "图片删除成功", nil)
}

// AuthParams 前端直传签名参数
// @Summary      获取直传签名
// @Description  前端直传托管服务所需的token/expire/signature，私钥不出后端
// @Tags         上传
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/upload/auth [get]
func (h *UploadHandler) AuthParams(c *gin.Context) {
	params, err := h.uploadUseCase.AuthParams()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"auth": dto.AuthParamsResponse{
		Token:     params.Token,
		Expire:    params.Expire,
		Signature: params.Signature,
	}})
}
