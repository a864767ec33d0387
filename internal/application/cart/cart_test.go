package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/cart"
)

type memoryCartRepo struct {
	items  map[uint]*cart.CartItem
	nextID uint
	titles map[uint]string
}

func (r *memoryCartRepo) withTitle(item *cart.CartItem) *cart.CartItem {
	cp := *item
	cp.BookTitle = r.titles[item.BookID]
	return &cp
}

func (r *memoryCartRepo) FindByUserID(_ context.Context, userID uint) ([]*cart.CartItem, error) {
	var out []*cart.CartItem
	for id := uint(1); id <= r.nextID; id++ {
		if it, ok := r.items[id]; ok && it.UserID == userID {
			out = append(out, r.withTitle(it))
		}
	}
	return out, nil
}

func (r *memoryCartRepo) FindByID(_ context.Context, id uint) (*cart.CartItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, cart.ErrCartItemNotFound
	}
	return r.withTitle(it), nil
}

func (r *memoryCartRepo) FindByUserAndBook(_ context.Context, userID, bookID uint) (*cart.CartItem, error) {
	for _, it := range r.items {
		if it.UserID == userID && it.BookID == bookID {
			return r.withTitle(it), nil
		}
	}
	return nil, cart.ErrCartItemNotFound
}

func (r *memoryCartRepo) Create(_ context.Context, item *cart.CartItem) error {
	r.nextID++
	item.ID = r.nextID
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memoryCartRepo) UpdateQuantity(_ context.Context, item *cart.CartItem) error {
	r.items[item.ID].Quantity = item.Quantity
	return nil
}

func (r *memoryCartRepo) Delete(_ context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *memoryCartRepo) DeleteByIDs(_ context.Context, ids []uint) error {
	for _, id := range ids {
		delete(r.items, id)
	}
	return nil
}

type stubBookRepo struct {
	book.Repository
	books map[uint]*book.Book
}

func (r stubBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func newTestService() (*Service, *memoryCartRepo) {
	carts := &memoryCartRepo{
		items:  map[uint]*cart.CartItem{},
		titles: map[uint]string{10: "Go语言实战", 11: "Go程序设计语言"},
	}
	books := stubBookRepo{books: map[uint]*book.Book{
		10: {ID: 10, Title: "Go语言实战", Price: decimal.NewFromInt(59)},
		11: {ID: 11, Title: "Go程序设计语言", Price: decimal.NewFromInt(79)},
	}}
	return NewService(carts, books), carts
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("同一本书累加数量", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.AddItem(ctx, 1, 10, 2)
		require.NoError(t, err)
		dto, err := svc.AddItem(ctx, 1, 10, 3)
		require.NoError(t, err)

		require.Len(t, dto.CartItems, 1)
		assert.Equal(t, 5, dto.CartItems[0].Quantity)
		assert.Equal(t, "Go语言实战", dto.CartItems[0].BookTitle)
		assert.Equal(t, uint(1), dto.UserID)
	})

	t.Run("图书不存在", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.AddItem(ctx, 1, 999, 1)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("数量非法", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.AddItem(ctx, 1, 10, 0)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})
}

func TestService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	svc, carts := newTestService()

	dto, err := svc.AddItem(ctx, 1, 10, 1)
	require.NoError(t, err)
	itemID := dto.CartItems[0].ID

	dto, err = svc.UpdateItem(ctx, 1, itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, dto.CartItems[0].Quantity)

	_, err = svc.UpdateItem(ctx, 2, itemID, 1)
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound, "不能修改其他用户的购物车")

	assert.ErrorIs(t, svc.RemoveItem(ctx, 2, itemID), cart.ErrCartItemNotFound)
	require.NoError(t, svc.RemoveItem(ctx, 1, itemID))
	assert.Empty(t, carts.items)

	empty, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, empty.CartItems)
}
