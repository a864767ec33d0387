package book

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookshop/internal/domain/category"
)

// Service 图书领域服务
// 封装创建/修改图书时的业务规则校验
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字)
	// - 价格必须>0
	// - 分类必须存在
	// - ISBN不能重复
	CreateBook(ctx context.Context, params CreateParams) (*Book, error)

	// UpdateBook 修改图书，ISBN变更时同样校验唯一性
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)
}

// CreateParams 创建图书参数
type CreateParams struct {
	ISBN        string
	Title       string
	Author      string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
}

// UpdateParams 修改图书参数，零值字段不修改
type UpdateParams struct {
	ISBN        string
	Title       string
	Author      string
	Price       *decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint // nil表示不修改，空切片表示清空
}

type service struct {
	repo         Repository
	categoryRepo category.Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository, categoryRepo category.Repository) Service {
	return &service{repo: repo, categoryRepo: categoryRepo}
}

func (s *service) CreateBook(ctx context.Context, params CreateParams) (*Book, error) {
	isbn := normalizeISBN(params.ISBN)
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if !params.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}

	categoryIDs := uniqueIDs(params.CategoryIDs)
	if err := s.ensureCategoriesExist(ctx, categoryIDs); err != nil {
		return nil, err
	}

	if err := s.ensureISBNAvailable(ctx, isbn, 0); err != nil {
		return nil, err
	}

	b := NewBook(isbn, params.Title, params.Author, params.Price, params.Description, params.CoverImage, categoryIDs)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.ISBN != "" {
		isbn := normalizeISBN(params.ISBN)
		if !isValidISBN(isbn) {
			return nil, ErrInvalidISBN
		}
		if isbn != b.ISBN {
			if err := s.ensureISBNAvailable(ctx, isbn, b.ID); err != nil {
				return nil, err
			}
			b.ISBN = isbn
		}
	}

	if params.Price != nil {
		if err := b.UpdatePrice(*params.Price); err != nil {
			return nil, err
		}
	}

	if params.CategoryIDs != nil {
		categoryIDs := uniqueIDs(params.CategoryIDs)
		if err := s.ensureCategoriesExist(ctx, categoryIDs); err != nil {
			return nil, err
		}
		b.ReplaceCategories(categoryIDs)
	}

	b.UpdateInfo(params.Title, params.Author, params.Description, params.CoverImage)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ensureISBNAvailable(ctx context.Context, isbn string, selfID uint) error {
	existing, err := s.repo.FindByISBN(ctx, isbn)
	switch {
	case err == nil && existing.ID != selfID:
		return ErrISBNDuplicate
	case err != nil && !errors.Is(err, ErrBookNotFound):
		return err
	}
	return nil
}

func (s *service) ensureCategoriesExist(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.categoryRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return category.ErrCategoryNotFound
	}
	return nil
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

var isbnSeparator = regexp.MustCompile(`[\s-]`)

// normalizeISBN 去除分隔符(978-7-115-42802-8 → 9787115428028)
func normalizeISBN(isbn string) string {
	return isbnSeparator.ReplaceAllString(isbn, "")
}

// isValidISBN 只检查位数和是否全为数字，ISBN-10末位允许X
func isValidISBN(isbn string) bool {
	switch len(isbn) {
	case 10:
		return allDigits(isbn[:9]) && (allDigits(isbn[9:]) || isbn[9] == 'X' || isbn[9] == 'x')
	case 13:
		return allDigits(isbn)
	default:
		return false
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func uniqueIDs(ids []uint) []uint {
	if ids == nil {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
