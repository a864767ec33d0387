package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/user"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// userRepository 用户仓储实现（MySQL）
// 邮箱唯一性由数据库UNIQUE索引保证，Duplicate Entry转换为ErrEmailDuplicate
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
// 返回domain层的接口类型
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户，用户与角色关联在同一事务中写入
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		Email:           u.Email,
		Password:        u.Password,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ShippingAddress: u.ShippingAddress,
		Roles:           toRoleModels(u.Roles),
	}

	// Roles.*: 只写user_roles，不回写roles表
	if err := dbFromContext(ctx, r.db).Omit("Roles.*").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := dbFromContext(ctx, r.db).Preload("Roles").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// FindByEmail 根据邮箱查找用户
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	err := dbFromContext(ctx, r.db).Preload("Roles").Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// ExistsByEmail 邮箱是否已注册(包括已注销的账号)
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Unscoped().Model(&UserModel{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询用户失败")
	}
	return count > 0, nil
}

// Update 更新用户资料，不修改邮箱与角色
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	result := dbFromContext(ctx, r.db).Model(&UserModel{ID: u.ID}).Updates(map[string]interface{}{
		"password":         u.Password,
		"first_name":       u.FirstName,
		"last_name":        u.LastName,
		"shipping_address": u.ShippingAddress,
		"updated_at":       u.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新用户失败")
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// roleRepository 角色仓储
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建角色仓储
func NewRoleRepository(db *gorm.DB) user.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(ctx context.Context, name user.RoleName) (*user.Role, error) {
	var model RoleModel
	if err := dbFromContext(ctx, r.db).Where("name = ?", string(name)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "查询角色失败")
	}
	return &user.Role{ID: model.ID, Name: user.RoleName(model.Name)}, nil
}

// =========================================
// 辅助函数：模型转换
// =========================================

func toUserEntity(model *UserModel) *user.User {
	roles := make([]user.Role, len(model.Roles))
	for i, r := range model.Roles {
		roles[i] = user.Role{ID: r.ID, Name: user.RoleName(r.Name)}
	}
	return &user.User{
		ID:              model.ID,
		Email:           model.Email,
		Password:        model.Password,
		FirstName:       model.FirstName,
		LastName:        model.LastName,
		ShippingAddress: model.ShippingAddress,
		Roles:           roles,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func toRoleModels(roles []user.Role) []RoleModel {
	out := make([]RoleModel, len(roles))
	for i, r := range roles {
		out[i] = RoleModel{ID: r.ID, Name: string(r.Name)}
	}
	return out
}
