package order

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/order"
)

// loadOwnedOrder 订单不存在或不属于该用户时统一返回ErrOrderNotFound
func loadOwnedOrder(ctx context.Context, repo order.Repository, orderID, userID uint) (*order.Order, error) {
	o, err := repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

// GetOrderItemsUseCase 查询订单明细
type GetOrderItemsUseCase struct {
	orderRepo order.Repository
}

func NewGetOrderItemsUseCase(orderRepo order.Repository) *GetOrderItemsUseCase {
	return &GetOrderItemsUseCase{orderRepo: orderRepo}
}

func (uc *GetOrderItemsUseCase) Execute(ctx context.Context, orderID, userID uint) ([]OrderItemDto, error) {
	o, err := loadOwnedOrder(ctx, uc.orderRepo, orderID, userID)
	if err != nil {
		return nil, err
	}
	return toOrderItemDtos(o.Items), nil
}

// GetOrderItemUseCase 查询单条订单明细
type GetOrderItemUseCase struct {
	orderRepo order.Repository
}

func NewGetOrderItemUseCase(orderRepo order.Repository) *GetOrderItemUseCase {
	return &GetOrderItemUseCase{orderRepo: orderRepo}
}

func (uc *GetOrderItemUseCase) Execute(ctx context.Context, orderID, itemID, userID uint) (*OrderItemDto, error) {
	o, err := loadOwnedOrder(ctx, uc.orderRepo, orderID, userID)
	if err != nil {
		return nil, err
	}

	item, ok := o.FindItem(itemID)
	if !ok {
		return nil, order.ErrOrderItemNotFound
	}
	dto := toOrderItemDto(item)
	return &dto, nil
}

// ListOrdersUseCase 查询当前用户的订单列表
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	orders, total, err := uc.orderRepo.ListByUserID(ctx, req.UserID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]OrderDto, len(orders))
	for i, o := range orders {
		list[i] = toOrderDto(o)
	}
	return &ListOrdersResponse{
		List:     list,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
