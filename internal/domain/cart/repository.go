package cart

import (
	"context"
)

// Repository 购物车仓储接口
// 所有方法都通过context参与调用方的事务
type Repository interface {
	// FindByUserID 查询用户购物车中的全部条目(带图书书名与当前价格)
	FindByUserID(ctx context.Context, userID uint) ([]*CartItem, error)

	// FindByID 不存在时返回ErrCartItemNotFound
	FindByID(ctx context.Context, id uint) (*CartItem, error)

	// FindByUserAndBook 不存在时返回ErrCartItemNotFound
	FindByUserAndBook(ctx context.Context, userID, bookID uint) (*CartItem, error)

	Create(ctx context.Context, item *CartItem) error

	// UpdateQuantity 只更新数量
	UpdateQuantity(ctx context.Context, item *CartItem) error

	Delete(ctx context.Context, id uint) error

	// DeleteByIDs 批量删除(下单后清理已结算条目)
	DeleteByIDs(ctx context.Context, ids []uint) error
}
