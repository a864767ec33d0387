package book

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/category"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePage 参数默认值与范围限制(page默认1, pageSize默认20, 最大100)
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// GetBookUseCase 图书详情
type GetBookUseCase struct {
	bookRepo book.Repository
}

func NewGetBookUseCase(bookRepo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{bookRepo: bookRepo}
}

func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDto, error) {
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toBookDto(b)
	return &dto, nil
}

// ListBooksUseCase 图书列表查询用例
type ListBooksUseCase struct {
	bookRepo book.Repository
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookRepo book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

// ListBooksRequest 列表查询请求
type ListBooksRequest struct {
	Page     int
	PageSize int
	SortBy   string // price_asc, price_desc, title_asc, created_at_desc
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	req.Page, req.PageSize = normalizePage(req.Page, req.PageSize)

	books, total, err := uc.bookRepo.List(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		SortBy:   req.SortBy,
	})
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		List:     toBookDtos(books),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// SearchBooksUseCase 按规格参数搜索图书
//
//	GET /api/v1/books/search?price=10.00,20.00&author=Rob%20Pike
//	→ Filters{"price": ["10.00","20.00"], "author": ["Rob Pike"]}
type SearchBooksUseCase struct {
	bookRepo book.Repository
}

func NewSearchBooksUseCase(bookRepo book.Repository) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookRepo: bookRepo}
}

// SearchBooksRequest 搜索请求
type SearchBooksRequest struct {
	Filters  map[string][]string
	Page     int
	PageSize int
}

func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*ListBooksResponse, error) {
	req.Page, req.PageSize = normalizePage(req.Page, req.PageSize)

	books, total, err := uc.bookRepo.Search(ctx, book.SearchParams{
		Filters:  req.Filters,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &ListBooksResponse{
		List:     toBookDtos(books),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// ListBooksByCategoryUseCase 查询分类下的图书
type ListBooksByCategoryUseCase struct {
	bookRepo     book.Repository
	categoryRepo category.Repository
}

func NewListBooksByCategoryUseCase(bookRepo book.Repository, categoryRepo category.Repository) *ListBooksByCategoryUseCase {
	return &ListBooksByCategoryUseCase{bookRepo: bookRepo, categoryRepo: categoryRepo}
}

// Execute 分类不存在时返回ErrCategoryNotFound
func (uc *ListBooksByCategoryUseCase) Execute(ctx context.Context, categoryID uint) ([]BookDtoWithoutCategoryIds, error) {
	if _, err := uc.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	books, err := uc.bookRepo.ListByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookDtoWithoutCategoryIds, len(books))
	for i, b := range books {
		dtos[i] = toBookDtoWithoutCategoryIds(b)
	}
	return dtos, nil
}
