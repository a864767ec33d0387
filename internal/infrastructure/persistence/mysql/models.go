package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GORM数据模型
// 这是infrastructure层的数据模型，包含GORM tag；领域实体不依赖GORM，Repository负责两者转换
// 表结构以migrations/下的SQL为准，这里的tag需与之保持一致

// UserModel 用户
type UserModel struct {
	ID              uint           `gorm:"primaryKey"`
	Email           string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password        string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	FirstName       string         `gorm:"size:50;not null"`
	LastName        string         `gorm:"size:50;not null"`
	ShippingAddress string         `gorm:"size:255"`
	Roles           []RoleModel    `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
	CreatedAt       time.Time      `gorm:"comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (UserModel) TableName() string { return "users" }

// RoleModel 角色
type RoleModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:32;not null"`
}

func (RoleModel) TableName() string { return "roles" }

// CategoryModel 分类
type CategoryModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:100;not null"`
	Description string         `gorm:"size:500"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (CategoryModel) TableName() string { return "categories" }

// BookModel 图书
// 价格使用DECIMAL(10,2)存储
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	ISBN        string          `gorm:"column:isbn;uniqueIndex;size:20;not null;comment:ISBN号"`
	Title       string          `gorm:"size:200;not null;comment:书名"`
	Author      string          `gorm:"size:100;not null;comment:作者"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:价格"`
	Description string          `gorm:"type:text;comment:图书描述"`
	CoverImage  string          `gorm:"size:500;comment:封面图片URL"`
	Categories  []CategoryModel `gorm:"many2many:book_categories;joinForeignKey:BookID;joinReferences:CategoryID"`
	CreatedAt   time.Time       `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt  `gorm:"index;comment:删除时间(软删除)"`
}

func (BookModel) TableName() string { return "books" }

// CartItemModel 购物车条目，(user_id, book_id)唯一
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:uk_cart_user_book;not null;comment:购物车所属用户"`
	BookID    uint      `gorm:"uniqueIndex:uk_cart_user_book;not null"`
	Quantity  int       `gorm:"not null"`
	Book      BookModel `gorm:"foreignKey:BookID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartItemModel) TableName() string { return "cart_items" }

// OrderModel 订单，与OrderItemModel是一对多关系
type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	OrderNo         string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID          uint             `gorm:"index;not null;comment:买家用户ID"`
	Status          string           `gorm:"index;size:16;not null;comment:订单状态"`
	Total           decimal.Decimal  `gorm:"type:decimal(12,2);not null;comment:订单总金额"`
	OrderDate       time.Time        `gorm:"index;not null"`
	ShippingAddress string           `gorm:"size:255;not null"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel 订单明细，Price为下单时单价快照
type OrderItemModel struct {
	ID       uint            `gorm:"primaryKey"`
	OrderID  uint            `gorm:"index;not null;comment:订单ID"`
	BookID   uint            `gorm:"index;not null;comment:图书ID"`
	Quantity int             `gorm:"not null;comment:购买数量"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:下单时单价"`
}

func (OrderItemModel) TableName() string { return "order_items" }
