package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/cart"
	"github.com/xiebiao/bookshop/internal/domain/order"
)

// =========================================
// 测试替身
// =========================================

type fakeOrderRepo struct {
	orders    map[uint]*order.Order
	nextID    uint
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*order.Order{}}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	o.ID = r.nextID
	for i := range o.Items {
		o.Items[i].ID = r.nextID*100 + uint(i)
		o.Items[i].OrderID = o.ID
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uint, status order.Status) error {
	o, ok := r.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) ListByUserID(_ context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var all []*order.Order
	for id := uint(1); id <= r.nextID; id++ {
		if o, ok := r.orders[id]; ok && o.UserID == userID {
			all = append(all, o)
		}
	}
	start := (page - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

type fakeCartRepo struct {
	items      []*cart.CartItem
	deletedIDs []uint
}

func (r *fakeCartRepo) FindByUserID(_ context.Context, userID uint) ([]*cart.CartItem, error) {
	var out []*cart.CartItem
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) FindByID(context.Context, uint) (*cart.CartItem, error) {
	return nil, cart.ErrCartItemNotFound
}

func (r *fakeCartRepo) FindByUserAndBook(context.Context, uint, uint) (*cart.CartItem, error) {
	return nil, cart.ErrCartItemNotFound
}

func (r *fakeCartRepo) Create(context.Context, *cart.CartItem) error         { return nil }
func (r *fakeCartRepo) UpdateQuantity(context.Context, *cart.CartItem) error { return nil }
func (r *fakeCartRepo) Delete(context.Context, uint) error                   { return nil }

func (r *fakeCartRepo) DeleteByIDs(_ context.Context, ids []uint) error {
	r.deletedIDs = append(r.deletedIDs, ids...)
	return nil
}

type fakeTx struct{ calls int }

func (t *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type recordingPublisher struct {
	events []order.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e order.Event) error {
	p.events = append(p.events, e)
	return p.err
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// =========================================
// CompleteOrder
// =========================================

func TestCompleteOrderUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("购物车结算成功", func(t *testing.T) {
		orders := newFakeOrderRepo()
		carts := &fakeCartRepo{items: []*cart.CartItem{
			{ID: 1, UserID: 7, BookID: 10, Quantity: 2, BookPrice: price("12.50")},
			{ID: 2, UserID: 7, BookID: 11, Quantity: 1, BookPrice: price("30.00")},
			{ID: 3, UserID: 8, BookID: 10, Quantity: 5, BookPrice: price("12.50")},
		}}
		tx := &fakeTx{}
		pub := &recordingPublisher{}

		dto, err := NewCompleteOrderUseCase(orders, carts, tx, pub).
			Execute(ctx, CompleteOrderRequest{UserID: 7, ShippingAddress: "上海市浦东新区"})
		require.NoError(t, err)

		assert.Equal(t, 1, tx.calls)
		assert.Equal(t, "55.00", dto.Total)
		assert.Equal(t, "PENDING", dto.Status)
		assert.Equal(t, "上海市浦东新区", dto.ShippingAddress)
		require.Len(t, dto.OrderItems, 2)
		assert.Equal(t, "12.50", dto.OrderItems[0].Price)
		assert.Equal(t, 2, dto.OrderItems[0].Quantity)

		assert.ElementsMatch(t, []uint{1, 2}, carts.deletedIDs, "只删除当前用户已结算的条目")

		require.Len(t, pub.events, 1)
		ev, ok := pub.events[0].(order.CompletedEvent)
		require.True(t, ok)
		assert.Equal(t, dto.ID, ev.OrderID)
		assert.Equal(t, "55.00", ev.Total)
	})

	t.Run("空购物车", func(t *testing.T) {
		pub := &recordingPublisher{}
		_, err := NewCompleteOrderUseCase(newFakeOrderRepo(), &fakeCartRepo{}, &fakeTx{}, pub).
			Execute(ctx, CompleteOrderRequest{UserID: 7})

		assert.ErrorIs(t, err, cart.ErrCartEmpty)
		assert.Empty(t, pub.events)
	})

	t.Run("保存订单失败不删除购物车", func(t *testing.T) {
		orders := newFakeOrderRepo()
		orders.createErr = errors.New("db down")
		carts := &fakeCartRepo{items: []*cart.CartItem{{ID: 1, UserID: 7, BookID: 10, Quantity: 1, BookPrice: price("1")}}}
		pub := &recordingPublisher{}

		_, err := NewCompleteOrderUseCase(orders, carts, &fakeTx{}, pub).Execute(ctx, CompleteOrderRequest{UserID: 7})
		assert.Error(t, err)
		assert.Empty(t, carts.deletedIDs)
		assert.Empty(t, pub.events)
	})

	t.Run("事件发布失败不影响下单", func(t *testing.T) {
		carts := &fakeCartRepo{items: []*cart.CartItem{{ID: 1, UserID: 7, BookID: 10, Quantity: 1, BookPrice: price("9.99")}}}
		pub := &recordingPublisher{err: errors.New("broker down")}

		dto, err := NewCompleteOrderUseCase(newFakeOrderRepo(), carts, &fakeTx{}, pub).Execute(ctx, CompleteOrderRequest{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, "9.99", dto.Total)
	})
}

// =========================================
// 查询
// =========================================

func seedOrder(t *testing.T, repo *fakeOrderRepo, userID uint) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.GenerateOrderNo(), userID, "addr", []order.OrderItem{
		{BookID: 1, Quantity: 1, Price: price("10")},
		{BookID: 2, Quantity: 3, Price: price("2.5")},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), o))
	return o
}

func TestGetOrderItemsUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo()
	o := seedOrder(t, repo, 7)
	uc := NewGetOrderItemsUseCase(repo)

	items, err := uc.Execute(ctx, o.ID, 7)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = uc.Execute(ctx, o.ID, 8)
	assert.ErrorIs(t, err, order.ErrOrderNotFound, "其他用户的订单视为不存在")

	_, err = uc.Execute(ctx, 999, 7)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestGetOrderItemUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo()
	o := seedOrder(t, repo, 7)
	uc := NewGetOrderItemUseCase(repo)

	item, err := uc.Execute(ctx, o.ID, o.Items[1].ID, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(2), item.BookID)
	assert.Equal(t, "2.50", item.Price)

	_, err = uc.Execute(ctx, o.ID, 12345, 7)
	assert.ErrorIs(t, err, order.ErrOrderItemNotFound)

	_, err = uc.Execute(ctx, o.ID, o.Items[1].ID, 8)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestListOrdersUseCase(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(t, repo, 7)
	seedOrder(t, repo, 7)
	seedOrder(t, repo, 8)

	resp, err := NewListOrdersUseCase(repo).Execute(context.Background(), ListOrdersRequest{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
	for _, o := range resp.List {
		assert.Equal(t, uint(7), o.UserID)
	}
}

// =========================================
// UpdateStatus
// =========================================

func TestUpdateOrderStatusUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("任意合法状态", func(t *testing.T) {
		repo := newFakeOrderRepo()
		o := seedOrder(t, repo, 7)
		pub := &recordingPublisher{}
		uc := NewUpdateOrderStatusUseCase(repo, pub)

		resp, err := uc.Execute(ctx, o.ID, "DELIVERED")
		require.NoError(t, err)
		assert.Equal(t, "DELIVERED", resp.Status)
		assert.Equal(t, order.StatusDelivered, repo.orders[o.ID].Status)

		// 允许回退到任意状态
		resp, err = uc.Execute(ctx, o.ID, "PENDING")
		require.NoError(t, err)
		assert.Equal(t, "PENDING", resp.Status)

		require.Len(t, pub.events, 2)
		ev := pub.events[0].(order.StatusChangedEvent)
		assert.Equal(t, order.StatusPending, ev.From)
		assert.Equal(t, order.StatusDelivered, ev.To)
	})

	t.Run("未知状态", func(t *testing.T) {
		repo := newFakeOrderRepo()
		o := seedOrder(t, repo, 7)

		_, err := NewUpdateOrderStatusUseCase(repo, &recordingPublisher{}).Execute(ctx, o.ID, "REFUNDED")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
		assert.Equal(t, order.StatusPending, repo.orders[o.ID].Status)
	})

	t.Run("订单不存在", func(t *testing.T) {
		_, err := NewUpdateOrderStatusUseCase(newFakeOrderRepo(), &recordingPublisher{}).Execute(ctx, 42, "PAID")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}
