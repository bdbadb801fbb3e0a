package handler

import (
	"github.com/gin-gonic/gin"

	appcarousel "github.com/xiebiao/shopadmin/internal/application/carousel"
	"github.com/xiebiao/shopadmin/internal/interface/http/dto"
	"github.com/xiebiao/shopadmin/pkg/response"
)

// CarouselHandler 轮播图HTTP处理器
type CarouselHandler struct {
	manageUseCase *appcarousel.ManageSlidesUseCase
}

// NewCarouselHandler 创建轮播图处理器
func NewCarouselHandler(manageUseCase *appcarousel.ManageSlidesUseCase) *CarouselHandler {
	return &CarouselHandler{manageUseCase: manageUseCase}
}

// List 轮播图列表
// @Summary      轮播图列表
// @Description  按展示顺序返回，active=true只返回启用的
// @Tags         轮播图
// @Produce      json
// @Param        active query bool false "只看启用的"
// @Success      200 {object} map[string]interface{}
// @Router       /api/carousel [get]
func (h *CarouselHandler) List(c *gin.Context) {
	slides, err := h.manageUseCase.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"slides": dto.ToSlideResponses(slides)})
}

// Get 轮播图详情
// @Summary      轮播图详情
// @Tags         轮播图
// @Produce      json
// @Param        id path int true "轮播图ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "轮播图不存在"
// @Router       /api/carousel/{id} [get]
func (h *CarouselHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	s, err := h.manageUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"slide": dto.ToSlideResponse(s)})
}

// Create 创建轮播图
// @Summary      创建轮播图
// @Tags         轮播图
// @Accept       json
// @Produce      json
// @Param        request body dto.SlideRequest true "轮播图信息"
// @Success      201 {object} map[string]interface{}
// @Router       /api/carousel [post]
func (h *CarouselHandler) Create(c *gin.Context) {
	var req dto.SlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	s, err := h.manageUseCase.Create(c.Request.Context(), appcarousel.SlideRequest{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		ButtonTitle: req.ButtonTitle,
		ButtonLink:  req.ButtonLink,
		Order:       req.Order,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "轮播图创建成功", gin.H{"slide": dto.ToSlideResponse(s)})
}

// Update 更新轮播图
// @Summary      更新轮播图
// @Tags         轮播图
// @Accept       json
// @Produce      json
// @Param        id path int true "轮播图ID"
// @Param        request body dto.SlideRequest true "轮播图信息"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "轮播图不存在"
// @Router       /api/carousel/{id} [put]
func (h *CarouselHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	s, err := h.manageUseCase.Update(c.Request.Context(), id, appcarousel.SlideRequest{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		ButtonTitle: req.ButtonTitle,
		ButtonLink:  req.ButtonLink,
		Order:       req.Order,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "轮播图更新成功", gin.H{"slide": dto.ToSlideResponse(s)})
}

// Delete 删除轮播图
// @Summary      删除轮播图
// @Tags         轮播图
// @Produce      json
// @Param        id path int true "轮播图ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "轮播图不存在"
// @Router       /api/carousel/{id} [delete]
func (h *CarouselHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.manageUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "轮播图删除成功", nil)
}

// SetActive 切换轮播图启用状态
// @Summary      切换轮播图启用状态
// @Tags         轮播图
// @Accept       json
// @Produce      json
// @Param        id path int true "轮播图ID"
// @Param        request body dto.SetActiveRequest true "启用状态"
// @Success      200 {object} map[string]interface{}
// @Router       /api/carousel/{id}/active [patch]
func (h *CarouselHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	s, err := h.manageUseCase.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "轮播图状态已更新", gin.H{"slide": dto.ToSlideResponse(s)})
}
