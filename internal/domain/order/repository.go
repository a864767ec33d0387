package order

import (
	"context"
)

// Repository 订单仓储接口
// 事务通过context传递
type Repository interface {
	// Create 创建订单(包含订单明细)，订单和明细在同一事务中写入
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// UpdateStatus 只更新状态
	UpdateStatus(ctx context.Context, id uint, status Status) error

	// ListByUserID 查询用户的订单列表(包含明细)，按下单时间倒序
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
}
