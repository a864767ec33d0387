package order

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewOrder_Total(t *testing.T) {
	o, err := NewOrder("ORD1", 5, "北京市海淀区", []OrderItem{
		{BookID: 1, Quantity: 2, Price: price("10.00")},
		{BookID: 2, Quantity: 1, Price: price("5.50")},
	})
	require.NoError(t, err)

	assert.Equal(t, "25.50", o.Total.StringFixed(2))
	assert.Equal(t, StatusPending, o.Status)
	assert.False(t, o.OrderDate.IsZero())
	assert.Equal(t, "北京市海淀区", o.ShippingAddress)
}

func TestNewOrder_Invalid(t *testing.T) {
	_, err := NewOrder("ORD1", 5, "", nil)
	assert.ErrorIs(t, err, ErrInvalidOrderItems)

	_, err = NewOrder("ORD1", 5, "", []OrderItem{{BookID: 1, Quantity: 0, Price: price("1")}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestOrder_TotalIsExact(t *testing.T) {
	items := make([]OrderItem, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, OrderItem{BookID: uint(i + 1), Quantity: 1, Price: price("0.10")})
	}
	o, err := NewOrder("ORD1", 1, "", items)
	require.NoError(t, err)

	assert.True(t, o.Total.Equal(decimal.NewFromInt(1)), "十个0.10之和必须精确等于1.00")
}

func TestParseStatus(t *testing.T) {
	for _, st := range Statuses {
		got, err := ParseStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseStatus("paid")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("REFUNDED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrder_UpdateStatus(t *testing.T) {
	o := &Order{Status: StatusCompleted}

	// 任意合法状态之间都允许切换
	require.NoError(t, o.UpdateStatus(StatusPending))
	assert.Equal(t, StatusPending, o.Status)

	assert.ErrorIs(t, o.UpdateStatus("UNKNOWN"), ErrInvalidStatus)
	assert.Equal(t, StatusPending, o.Status)
}

func TestOrder_FindItem(t *testing.T) {
	o := &Order{UserID: 3, Items: []OrderItem{{ID: 10, BookID: 1}, {ID: 11, BookID: 2}}}

	item, ok := o.FindItem(11)
	assert.True(t, ok)
	assert.Equal(t, uint(2), item.BookID)

	_, ok = o.FindItem(12)
	assert.False(t, ok)
	assert.True(t, o.IsOwnedBy(3))
}

func TestGenerateOrderNo(t *testing.T) {
	a, b := GenerateOrderNo(), GenerateOrderNo()
	assert.True(t, strings.HasPrefix(a, "ORD"))
	assert.Len(t, a, 3+14+8)
	assert.NotEqual(t, a, b)
}

func TestNewCompletedEvent(t *testing.T) {
	o := &Order{ID: 1, OrderNo: "ORD1", UserID: 2, Total: price("25.5"), Items: []OrderItem{{}, {}}}
	ev := NewCompletedEvent(o)

	assert.Equal(t, RoutingKeyCompleted, ev.RoutingKey())
	assert.Equal(t, "25.50", ev.Total)
	assert.Equal(t, 2, ev.ItemCount)
}
