package handler

import (
	"github.com/gin-gonic/gin"

	appcategory "github.com/xiebiao/shopadmin/internal/application/category"
	"github.com/xiebiao/shopadmin/internal/interface/http/dto"
	"github.com/xiebiao/shopadmin/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	manageUseCase *appcategory.ManageCategoriesUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(manageUseCase *appcategory.ManageCategoriesUseCase) *CategoryHandler {
	return &CategoryHandler{manageUseCase: manageUseCase}
}

// List 分类列表
// @Summary      分类列表
// @Description  按展示顺序返回，main_page=true只返回首页展示的分类
// @Tags         分类
// @Produce      json
// @Param        main_page query bool false "只看首页分类"
// @Success      200 {object} map[string]interface{}
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.manageUseCase.List(c.Request.Context(), c.Query("main_page") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"categories": dto.ToCategoryResponses(categories)})
}

// Get 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "分类不存在"
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cat, err := h.manageUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"category": dto.ToCategoryResponse(cat)})
}

// Create 创建分类
// @Summary      创建分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      201 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{} "分类名称已存在"
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	cat, err := h.manageUseCase.Create(c.Request.Context(), appcategory.CategoryRequest{
		Name:           req.Name,
		Description:    req.Description,
		ShowOnMainPage: req.ShowOnMainPage,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "分类创建成功", gin.H{"category": dto.ToCategoryResponse(cat)})
}

// Update 更新分类
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        request body dto.CategoryRequest true "分类信息"
// @Success      200 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{} "分类名称已存在"
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	cat, err := h.manageUseCase.Update(c.Request.Context(), id, appcategory.CategoryRequest{
		Name:           req.Name,
		Description:    req.Description,
		ShowOnMainPage: req.ShowOnMainPage,
		DisplayOrder:   req.DisplayOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "分类更新成功", gin.H{"category": dto.ToCategoryResponse(cat)})
}

// Delete 删除分类
// @Summary      删除分类
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "分类不存在"
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.manageUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "分类删除成功", nil)
}
