package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	Create(ctx context.Context, c *Category) error

	// FindByID 不存在时返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByIDs 批量查询，只返回存在的分类
	FindByIDs(ctx context.Context, ids []uint) ([]*Category, error)

	List(ctx context.Context) ([]*Category, error)

	Update(ctx context.Context, c *Category) error

	// Delete 软删除，同时解除与图书的关联
	Delete(ctx context.Context, id uint) error
}
