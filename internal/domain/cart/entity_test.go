package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartItem(t *testing.T) {
	item, err := NewCartItem(7, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(7), item.UserID)
	assert.Equal(t, 2, item.Quantity)

	_, err = NewCartItem(7, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartItem_Quantity(t *testing.T) {
	item, err := NewCartItem(1, 1, 1)
	require.NoError(t, err)

	require.NoError(t, item.Increase(2))
	assert.Equal(t, 3, item.Quantity)

	require.NoError(t, item.SetQuantity(5))
	assert.Equal(t, 5, item.Quantity)

	assert.ErrorIs(t, item.Increase(-1), ErrInvalidQuantity)
	assert.ErrorIs(t, item.SetQuantity(0), ErrInvalidQuantity)
	assert.Equal(t, 5, item.Quantity)
}

func TestCartItem_Subtotal(t *testing.T) {
	item := &CartItem{UserID: 1, Quantity: 3, BookPrice: decimal.RequireFromString("19.99")}
	assert.Equal(t, "59.97", item.Subtotal().StringFixed(2))
	assert.True(t, item.IsOwnedBy(1))
	assert.False(t, item.IsOwnedBy(2))
}
