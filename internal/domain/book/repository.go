package book

import (
	"context"
)

// Repository 图书仓储接口
// 由domain层定义接口,infrastructure层实现
type Repository interface {
	// Create 创建图书(同时写入分类关联)
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息(分类关联整体替换)
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search 按过滤条件查询，各条件之间为AND
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)

	// ListByCategoryID 查询分类下的全部图书
	ListByCategoryID(ctx context.Context, categoryID uint) ([]*Book, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	SortBy   string // 排序字段(price_asc, price_desc, title_asc, created_at_desc)
}

// SearchParams 搜索参数
// Filters的key为过滤字段(price、author、title、isbn)，value为候选值
//
//	?price=10.00,20.00&author=Orwell → {"price": ["10.00","20.00"], "author": ["Orwell"]}
type SearchParams struct {
	Filters  map[string][]string
	Page     int
	PageSize int
}
