package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	completeOrder *apporder.CompleteOrderUseCase
	listOrders    *apporder.ListOrdersUseCase
	getItems      *apporder.GetOrderItemsUseCase
	getItem       *apporder.GetOrderItemUseCase
	updateStatus  *apporder.UpdateOrderStatusUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	completeOrder *apporder.CompleteOrderUseCase,
	listOrders *apporder.ListOrdersUseCase,
	getItems *apporder.GetOrderItemsUseCase,
	getItem *apporder.GetOrderItemUseCase,
	updateStatus *apporder.UpdateOrderStatusUseCase,
) *OrderHandler {
	return &OrderHandler{
		completeOrder: completeOrder,
		listOrders:    listOrders,
		getItems:      getItems,
		getItem:       getItem,
		updateStatus:  updateStatus,
	}
}

// CompleteOrder 购物车结算下单
// @Summary      下单
// @Description  将当前用户购物车中的全部条目生成订单，成功后清空这些条目
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CompleteOrderRequest true "收货地址"
// @Success      201 {object} response.Response{data=apporder.OrderDto} "下单成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "购物车为空"
// @Router       /orders [post]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	var req dto.CompleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.completeOrder.Execute(c.Request.Context(), apporder.CompleteOrderRequest{
		UserID:          middleware.MustGetUserID(c),
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListOrders 当前用户的订单列表
// @Summary      订单列表
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response{data=response.PageData{list=[]apporder.OrderDto}}
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.listOrders.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		UserID:   middleware.MustGetUserID(c),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.List, result.Total, result.Page, result.PageSize)
}

// GetOrderItems 订单明细
// @Summary      订单明细
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=[]apporder.OrderItemDto}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id}/items [get]
func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.getItems.Execute(c.Request.Context(), orderID, middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetOrderItem 单条订单明细
// @Summary      单条订单明细
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        itemId path int true "明细ID"
// @Success      200 {object} response.Response{data=apporder.OrderItemDto}
// @Failure      404 {object} response.Response "订单或明细不存在"
// @Router       /orders/{id}/items/{itemId} [get]
func (h *OrderHandler) GetOrderItem(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	result, err := h.getItem.Execute(c.Request.Context(), orderID, itemID, middleware.MustGetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateOrderStatus 更新订单状态
// @Summary      更新订单状态
// @Description  管理员更新订单状态，可选PENDING、PAID、SHIPPED、DELIVERED、COMPLETED、CANCELLED
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "新状态"
// @Success      200 {object} response.Response{data=apporder.UpdateStatusResponse}
// @Failure      400 {object} response.Response "无效的订单状态"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.updateStatus.Execute(c.Request.Context(), orderID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
