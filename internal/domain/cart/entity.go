package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem 购物车条目
// 每个用户一个购物车，购物车以用户ID标识；同一本书在购物车中只有一行
type CartItem struct {
	ID        uint
	UserID    uint // 购物车所属用户
	BookID    uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time

	// 查询时随图书一起加载，只读
	BookTitle string
	BookPrice decimal.Decimal
}

// NewCartItem 创建购物车条目
func NewCartItem(userID, bookID uint, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	now := time.Now()
	return &CartItem{
		UserID:    userID,
		BookID:    bookID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Increase 再次加入同一本书时累加数量
func (i *CartItem) Increase(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Quantity += quantity
	i.UpdatedAt = time.Now()
	return nil
}

// SetQuantity 修改数量
func (i *CartItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 条目是否属于该用户的购物车
func (i *CartItem) IsOwnedBy(userID uint) bool {
	return i.UserID == userID
}

// Subtotal 小计 = 单价 × 数量
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.BookPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
