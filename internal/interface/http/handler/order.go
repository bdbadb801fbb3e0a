package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/shopadmin/internal/application/order"
	"github.com/xiebiao/shopadmin/internal/interface/http/dto"
	"github.com/xiebiao/shopadmin/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createUseCase *apporder.CreateOrderUseCase
	getUseCase    *apporder.GetOrderUseCase
	listUseCase   *apporder.ListOrdersUseCase
	updateUseCase *apporder.UpdateOrderUseCase
	deleteUseCase *apporder.DeleteOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createUseCase *apporder.CreateOrderUseCase,
	getUseCase *apporder.GetOrderUseCase,
	listUseCase *apporder.ListOrdersUseCase,
	updateUseCase *apporder.UpdateOrderUseCase,
	deleteUseCase *apporder.DeleteOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create 创建订单
// @Summary      创建订单
// @Description  订单号由服务端按ORD-YYYYMMDD-NNNN格式分配，并发下保证不重号
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "订单信息"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{} "参数错误或当日订单号用尽"
// @Failure      500 {object} map[string]interface{} "订单号分配竞争重试耗尽"
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	items := make([]apporder.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, apporder.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	o, err := h.createUseCase.Execute(c.Request.Context(), apporder.CreateOrderRequest{
		Customer: apporder.CustomerInfo{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
			City:    req.Customer.City,
			State:   req.Customer.State,
			Pincode: req.Customer.Pincode,
		},
		Items:          items,
		DeliveryCharge: req.DeliveryCharge,
		PaymentMode:    req.PaymentMode,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "订单创建成功", gin.H{"order": dto.ToOrderResponse(o)})
}

// List 订单列表
// @Summary      订单列表
// @Description  按状态、支付方式、日期范围过滤，按创建时间倒序分页
// @Tags         订单
// @Produce      json
// @Param        status query string false "订单状态" Enums(pending, shipped, delivered, cancelled)
// @Param        payment_mode query string false "支付方式" Enums(COD, Online)
// @Param        start_date query string false "开始日期 YYYY-MM-DD"
// @Param        end_date query string false "结束日期 YYYY-MM-DD"
// @Param        page query int false "页码，默认1"
// @Param        page_size query int false "每页数量，默认20"
// @Success      200 {object} map[string]interface{}
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orders, total, err := h.listUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		Status:      c.Query("status"),
		PaymentMode: c.Query("payment_mode"),
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"orders": dto.ToOrderResponses(orders),
		"pagination": dto.Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

// Get 订单详情
// @Summary      订单详情
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "订单不存在"
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	o, err := h.getUseCase.ByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"order": dto.ToOrderResponse(o)})
}

// GetByOrderID 按业务订单号查询
// @Summary      按订单号查询订单
// @Tags         订单
// @Produce      json
// @Param        orderId path string true "业务订单号，形如ORD-20250115-0001"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "订单不存在"
// @Router       /api/orders/order-id/{orderId} [get]
func (h *OrderHandler) GetByOrderID(c *gin.Context) {
	o, err := h.getUseCase.ByOrderID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"order": dto.ToOrderResponse(o)})
}

// UpdateStatus 更新订单状态
// @Summary      更新订单状态
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "订单状态"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "订单不存在"
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	o, err := h.updateUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "订单状态已更新", gin.H{"order": dto.ToOrderResponse(o)})
}

// UpdatePaymentStatus 更新支付状态
// @Summary      更新支付状态
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdatePaymentStatusRequest true "支付状态"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "订单不存在"
// @Router       /api/orders/{id}/payment-status [patch]
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	o, err := h.updateUseCase.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "支付状态已更新", gin.H{"order": dto.ToOrderResponse(o)})
}

// Delete 删除订单
// @Summary      删除订单
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{} "订单不存在"
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMessage(c, "订单删除成功", nil)
}
