package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/pkg/logger"
)

// CreateBookUseCase 新增图书用例(管理员)
// ISBN格式、价格、分类存在性、ISBN唯一性由领域服务校验
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建新增图书用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest 新增图书请求
type CreateBookRequest struct {
	ISBN        string
	Title       string
	Author      string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
}

// Execute 执行新增
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDto, error) {
	b, err := uc.bookService.CreateBook(ctx, book.CreateParams{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Uint("book_id", b.ID).Str("isbn", b.ISBN).Msg("图书已创建")

	dto := toBookDto(b)
	return &dto, nil
}

// UpdateBookUseCase 修改图书用例(管理员)
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建修改图书用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 修改图书请求，零值字段不修改
type UpdateBookRequest struct {
	ISBN        string
	Title       string
	Author      string
	Price       *decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint // nil表示不修改
}

// Execute 执行修改
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookDto, error) {
	b, err := uc.bookService.UpdateBook(ctx, id, book.UpdateParams{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return nil, err
	}

	dto := toBookDto(b)
	return &dto, nil
}

// DeleteBookUseCase 删除图书用例(管理员，软删除)
type DeleteBookUseCase struct {
	bookRepo book.Repository
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(bookRepo book.Repository) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookRepo: bookRepo}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Uint("book_id", id).Msg("图书已删除")
	return nil
}
