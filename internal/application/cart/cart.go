package cart

import (
	"context"
	"errors"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
)

// ShoppingCartDto 购物车DTO，每个用户一个购物车
type ShoppingCartDto struct {
	UserID    uint          `json:"user_id"`
	CartItems []CartItemDto `json:"cart_items"`
}

// CartItemDto 购物车条目DTO
type CartItemDto struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	BookTitle string `json:"book_title"`
	Quantity  int    `json:"quantity"`
}

func toShoppingCartDto(userID uint, items []*cart.CartItem) *ShoppingCartDto {
	dtos := make([]CartItemDto, len(items))
	for i, item := range items {
		dtos[i] = CartItemDto{
			ID:        item.ID,
			BookID:    item.BookID,
			BookTitle: item.BookTitle,
			Quantity:  item.Quantity,
		}
	}
	return &ShoppingCartDto{UserID: userID, CartItems: dtos}
}

// Service 购物车应用服务
type Service struct {
	cartRepo cart.Repository
	bookRepo book.Repository
}

// NewService 创建购物车应用服务
func NewService(cartRepo cart.Repository, bookRepo book.Repository) *Service {
	return &Service{cartRepo: cartRepo, bookRepo: bookRepo}
}

// GetCart 查询用户购物车
func (s *Service) GetCart(ctx context.Context, userID uint) (*ShoppingCartDto, error) {
	items, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toShoppingCartDto(userID, items), nil
}

// AddItem 加入购物车，同一本书已在购物车中时累加数量
func (s *Service) AddItem(ctx context.Context, userID, bookID uint, quantity int) (*ShoppingCartDto, error) {
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindByUserAndBook(ctx, userID, bookID)
	switch {
	case err == nil:
		if err := existing.Increase(quantity); err != nil {
			return nil, err
		}
		if err := s.cartRepo.UpdateQuantity(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, cart.ErrCartItemNotFound):
		item, err := cart.NewCartItem(userID, bookID, quantity)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// UpdateItem 修改条目数量
func (s *Service) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*ShoppingCartDto, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := item.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.UpdateQuantity(ctx, item); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// RemoveItem 删除条目
func (s *Service) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.cartRepo.Delete(ctx, itemID)
}

// ownedItem 条目不属于当前用户时按不存在处理
func (s *Service) ownedItem(ctx context.Context, userID, itemID uint) (*cart.CartItem, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsOwnedBy(userID) {
		return nil, cart.ErrCartItemNotFound
	}
	return item, nil
}
