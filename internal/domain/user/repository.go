package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层，实现在infrastructure/persistence/mysql
type Repository interface {
	// Create 创建用户(同时写入角色关联)
	// 邮箱已存在时返回ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 不存在时返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 不存在时返回ErrUserNotFound，结果包含角色
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail 邮箱是否已注册
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update 更新用户资料
	Update(ctx context.Context, user *User) error
}

// RoleRepository 角色仓储
type RoleRepository interface {
	// FindByName 不存在时返回ErrRoleNotFound
	FindByName(ctx context.Context, name RoleName) (*Role, error)
}
