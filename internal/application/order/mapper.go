package order

import (
	"github.com/xiebiao/bookshop/internal/domain/order"
)

func toOrderDto(o *order.Order) OrderDto {
	return OrderDto{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		Status:          o.Status.String(),
		Total:           o.Total.StringFixed(2),
		OrderDate:       o.OrderDate,
		ShippingAddress: o.ShippingAddress,
		OrderItems:      toOrderItemDtos(o.Items),
	}
}

func toOrderItemDto(item order.OrderItem) OrderItemDto {
	return OrderItemDto{
		ID:       item.ID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
		Price:    item.Price.StringFixed(2),
	}
}

func toOrderItemDtos(items []order.OrderItem) []OrderItemDto {
	dtos := make([]OrderItemDto, len(items))
	for i, item := range items {
		dtos[i] = toOrderItemDto(item)
	}
	return dtos
}
