package book

import (
	"github.com/xiebiao/bookshop/internal/domain/book"
)

func toBookDto(b *book.Book) BookDto {
	categoryIDs := b.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []uint{}
	}
	return BookDto{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price.StringFixed(2),
		Description: b.Description,
		CoverImage:  b.CoverImage,
		CategoryIDs: categoryIDs,
	}
}

func toBookDtoWithoutCategoryIds(b *book.Book) BookDtoWithoutCategoryIds {
	return BookDtoWithoutCategoryIds{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price.StringFixed(2),
		Description: b.Description,
		CoverImage:  b.CoverImage,
	}
}

func toBookDtos(books []*book.Book) []BookDto {
	dtos := make([]BookDto, len(books))
	for i, b := range books {
		dtos[i] = toBookDto(b)
	}
	return dtos
}
