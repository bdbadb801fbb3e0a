package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appproduct "github.com/xiebiao/shopadmin/internal/application/product"
	"github.com/xiebiao/shopadmin/internal/interface/http/dto"
	"github.com/xiebiao/shopadmin/pkg/response"
)

// ProductHandler 商品HTTP处理器
type ProductHandler struct {
	createUseCase *appproduct.CreateProductUseCase
	manageUseCase *appproduct.ManageProductsUseCase
	bulkUseCase   *appproduct.BulkProductsUseCase
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	createUseCase *appproduct.CreateProductUseCase,
	manageUseCase *appproduct.ManageProductsUseCase,
	bulkUseCase *appproduct.BulkProductsUseCase,
) *ProductHandler {
	return &ProductHandler{
		createUseCase: createUseCase,
		manageUseCase: manageUseCase,
		bulkUseCase:   bulkUseCase,
	}
}

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID必须为正整数")
		return 0, false
	}
	return uint(id), true
}

// List 商品列表
// @Summary      商品列表
// @Description  按分类、状态、新品、可见性过滤，分页返回
// @Tags         商品
// @Produce      json
// @Param        category_id query int false "分类ID"
// @Param        status query string false "状态" Enums(draft, published)
// @Param        new_arrival query bool false "只看新品"
// @Param        visible query bool false "只看可见商品"
// @Param        page query int false "页码，默认1"
// @Param        page_size query int false "每页数量，默认20，最大100"
// @Success      200 {object} map[string]interface{}
// @Router       /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	products, total, err := h.manageUseCase.List(c.Request.Context(), appproduct.ListProductsRequest{
		CategoryID: uint(categoryID),
		Status:     c.Query("status"),
		NewArrival: c.Query("new_arrival") == "true",
		Visible:    c.Query("visible") == "true",
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"products": dto.ToProductResponses(products),
		"pagination": dto.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

// Search 商品搜索
// 路由注册必须在GET /products/:id之前，否则"search"会被当成ID解析
// @Summary      商品搜索
// @Description  按关键词搜索商品名称、描述、标签
// @Tags         商品
// @Produce      json
// @Param        q query string true "搜索关键词"
// @Success      200 {object} map[string]interface{}
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.manageUseCase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"products": dto.ToProductResponses(products)})
}

// Get 商品详情
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "商品不存在"
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.manageUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"product": dto.ToProductResponse(p)})
}

// Create 创建商品
// @Summary      创建商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProductRequest true "商品信息"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{} "参数错误"
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	p, err := h.createUseCase.Execute(c.Request.Context(), appproduct.CreateProductRequest{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		MRP:          req.MRP,
		Price:        req.Price,
		SpecialPrice: req.SpecialPrice,
		Images:       req.Images,
		Tags:         req.Tags,
		Colors:       req.Colors,
		Sizes:        req.Sizes,
		IsVisible:    req.IsVisible,
		IsNewArrival: req.IsNewArrival,
		Status:       req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "商品创建成功", gin.H{"product": dto.ToProductResponse(p)})
}

// Update 更新商品
// @Summary      更新商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        request body dto.UpdateProductRequest true "商品信息"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "商品不存在"
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	p, err := h.manageUseCase.Update(c.Request.Context(), id, appproduct.UpdateProductRequest{
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		MRP:          req.MRP,
		Price:        req.Price,
		SpecialPrice: req.SpecialPrice,
		Images:       req.Images,
		Tags:         req.Tags,
		Colors:       req.Colors,
		Sizes:        req.Sizes,
		IsVisible:    req.IsVisible,
		IsNewArrival: req.IsNewArrival,
		Status:       req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "商品更新成功", gin.H{"product": dto.ToProductResponse(p)})
}

// Delete 删除商品
// @Summary      删除商品
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "商品不存在"
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.manageUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "商品删除成功", nil)
}

// SetVisibility 切换商品可见性
// @Summary      切换商品可见性
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        request body dto.SetVisibilityRequest true "可见性"
// @Success      200 {object} map[string]interface{}
// @Router       /api/products/{id}/visibility [patch]
func (h *ProductHandler) SetVisibility(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	p, err := h.manageUseCase.SetVisibility(c.Request.Context(), id, *req.IsVisible)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "商品可见性已更新", gin.H{"product": dto.ToProductResponse(p)})
}

// BulkDelete 批量删除商品
// @Summary      批量删除商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkDeleteRequest true "商品ID列表"
// @Success      200 {object} map[string]interface{}
// @Router       /api/products/bulk-delete [post]
func (h *ProductHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	deleted, err := h.bulkUseCase.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "批量删除完成", gin.H{"deleted_count": deleted})
}

// BulkUpdate 批量更新商品
// @Summary      批量更新商品
// @Description  只允许更新可见性、新品标记、状态、分类
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkUpdateRequest true "商品ID列表与更新字段"
// @Success      200 {object} map[string]interface{}
// @Router       /api/products/bulk-update [post]
func (h *ProductHandler) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updated, err := h.bulkUseCase.UpdateMany(c.Request.Context(), appproduct.BulkUpdateRequest{
		IDs:     req.IDs,
		Updates: req.Updates,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "批量更新完成", gin.H{"updated_count": updated})
}
