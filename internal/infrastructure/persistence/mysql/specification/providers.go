package specification

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 过滤参数名
const (
	KeyPrice  = "price"
	KeyAuthor = "author"
	KeyTitle  = "title"
	KeyISBN   = "isbn"
)

// PriceProvider price IN (params)，参数必须是合法的十进制数
type PriceProvider struct{}

func (PriceProvider) Key() string { return KeyPrice }

func (PriceProvider) Specification(params []string) (Specification, error) {
	if len(params) == 0 {
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidParams, "过滤条件%s缺少参数", KeyPrice)
	}
	prices := make([]decimal.Decimal, 0, len(params))
	for _, p := range params {
		d, err := decimal.NewFromString(strings.TrimSpace(p))
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrCodeInvalidParams, "无效的价格: %s", p).WithErr(err)
		}
		prices = append(prices, d)
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("books.price IN ?", prices)
	}, nil
}

// columnProvider 字符串列的精确匹配
type columnProvider struct {
	key    string
	column string
}

func (p columnProvider) Key() string { return p.key }

func (p columnProvider) Specification(params []string) (Specification, error) {
	if len(params) == 0 {
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidParams, "过滤条件%s缺少参数", p.key)
	}
	values := make([]string, len(params))
	for i, v := range params {
		values[i] = strings.TrimSpace(v)
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(p.column+" IN ?", values)
	}, nil
}

// NewAuthorProvider author IN (params)
func NewAuthorProvider() Provider { return columnProvider{key: KeyAuthor, column: "books.author"} }

// NewTitleProvider title IN (params)
func NewTitleProvider() Provider { return columnProvider{key: KeyTitle, column: "books.title"} }

// NewISBNProvider isbn IN (params)
func NewISBNProvider() Provider { return columnProvider{key: KeyISBN, column: "books.isbn"} }

// DefaultProviders 图书查询支持的全部过滤字段
func DefaultProviders() []Provider {
	return []Provider{
		PriceProvider{},
		NewAuthorProvider(),
		NewTitleProvider(),
		NewISBNProvider(),
	}
}
