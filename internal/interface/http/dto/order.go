package dto

// CompleteOrderRequest HTTP下单请求，订单明细来自当前用户的购物车
type CompleteOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required,max=255" example:"上海市浦东新区世纪大道1号"`
}

// UpdateOrderStatusRequest HTTP更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"SHIPPED"`
}
