package book

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book 图书实体(聚合根)
// 1. 价格使用decimal精确表示，保留两位小数
// 2. ISBN作为业务唯一标识(数据库层保证唯一性)
// 3. 分类为多对多关系，实体只保存分类ID
type Book struct {
	ID          uint
	ISBN        string
	Title       string
	Author      string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// 调用方需先完成ISBN与价格校验
func NewBook(isbn, title, author string, price decimal.Decimal, description, coverImage string, categoryIDs []uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Price:       price.Round(2),
		Description: description,
		CoverImage:  coverImage,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格
// 业务规则:价格必须>0
func (b *Book) UpdatePrice(newPrice decimal.Decimal) error {
	if !newPrice.IsPositive() {
		return ErrInvalidPrice
	}
	b.Price = newPrice.Round(2)
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息，空值表示不修改
func (b *Book) UpdateInfo(title, author, description, coverImage string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if description != "" {
		b.Description = description
	}
	if coverImage != "" {
		b.CoverImage = coverImage
	}
	b.UpdatedAt = time.Now()
}

// ReplaceCategories 替换分类
func (b *Book) ReplaceCategories(categoryIDs []uint) {
	b.CategoryIDs = categoryIDs
	b.UpdatedAt = time.Now()
}
