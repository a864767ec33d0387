package order

import "time"

// OrderDto 订单响应DTO
// 金额以两位小数字符串返回，避免浮点精度问题
type OrderDto struct {
	ID              uint           `json:"id"`
	OrderNo         string         `json:"order_no"`
	UserID          uint           `json:"user_id"`
	Status          string         `json:"status"`
	Total           string         `json:"total"`
	OrderDate       time.Time      `json:"order_date"`
	ShippingAddress string         `json:"shipping_address"`
	OrderItems      []OrderItemDto `json:"order_items"`
}

// OrderItemDto 订单明细DTO
type OrderItemDto struct {
	ID       uint   `json:"id"`
	BookID   uint   `json:"book_id"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"` // 下单时的单价
}

// CompleteOrderRequest 下单请求
type CompleteOrderRequest struct {
	UserID          uint
	ShippingAddress string
}

// ListOrdersRequest 订单列表请求
type ListOrdersRequest struct {
	UserID   uint
	Page     int
	PageSize int
}

// ListOrdersResponse 订单列表响应
type ListOrdersResponse struct {
	List     []OrderDto
	Total    int64
	Page     int
	PageSize int
}

// UpdateStatusResponse 更新状态响应
type UpdateStatusResponse struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}
