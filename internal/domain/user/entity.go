package user

import (
	"slices"
	"time"
)

// RoleName 角色名
type RoleName string

const (
	RoleUser  RoleName = "ROLE_USER"
	RoleAdmin RoleName = "ROLE_ADMIN"
)

// Role 角色(由migration预置)
type Role struct {
	ID   uint
	Name RoleName
}

// User 用户实体（聚合根）
// 1. 密码为bcrypt哈希值，不保存明文
// 2. 领域实体不依赖GORM tag，映射由infrastructure层处理
type User struct {
	ID              uint
	Email           string
	Password        string // bcrypt哈希值
	FirstName       string
	LastName        string
	ShippingAddress string
	Roles           []Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, firstName, lastName, shippingAddress string, roles ...Role) *User {
	now := time.Now()
	return &User{
		Email:           email,
		Password:        hashedPassword,
		FirstName:       firstName,
		LastName:        lastName,
		ShippingAddress: shippingAddress,
		Roles:           roles,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// RoleNames 角色名列表，写入JWT Claims
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = string(r.Name)
	}
	return names
}

// HasRole 是否拥有角色
func (u *User) HasRole(name RoleName) bool {
	return slices.ContainsFunc(u.Roles, func(r Role) bool { return r.Name == name })
}

// UpdateProfile 更新个人资料
func (u *User) UpdateProfile(firstName, lastName, shippingAddress string) {
	u.FirstName = firstName
	u.LastName = lastName
	u.ShippingAddress = shippingAddress
	u.UpdatedAt = time.Now()
}
