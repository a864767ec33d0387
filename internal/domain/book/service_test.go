package book

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/category"
)

// fakeRepo 内存版图书仓储，只实现Service用到的方法
type fakeRepo struct {
	Repository
	books  map[uint]*Book
	nextID uint
}

func newFakeRepo(books ...*Book) *fakeRepo {
	r := &fakeRepo{books: map[uint]*Book{}}
	for _, b := range books {
		r.nextID++
		b.ID = r.nextID
		r.books[b.ID] = b
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, b *Book) error {
	r.nextID++
	b.ID = r.nextID
	r.books[b.ID] = b
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Book, error) {
	if b, ok := r.books[id]; ok {
		return b, nil
	}
	return nil, ErrBookNotFound
}

func (r *fakeRepo) FindByISBN(_ context.Context, isbn string) (*Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, ErrBookNotFound
}

func (r *fakeRepo) Update(_ context.Context, b *Book) error {
	r.books[b.ID] = b
	return nil
}

type fakeCategoryRepo struct {
	category.Repository
	ids map[uint]bool
}

func (r *fakeCategoryRepo) FindByIDs(_ context.Context, ids []uint) ([]*category.Category, error) {
	var out []*category.Category
	for _, id := range ids {
		if r.ids[id] {
			out = append(out, &category.Category{ID: id})
		}
	}
	return out, nil
}

func newTestService(books ...*Book) (Service, *fakeRepo) {
	repo := newFakeRepo(books...)
	return NewService(repo, &fakeCategoryRepo{ids: map[uint]bool{1: true, 2: true}}), repo
}

func TestService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("创建成功", func(t *testing.T) {
		svc, repo := newTestService()
		b, err := svc.CreateBook(ctx, CreateParams{
			ISBN:        "978-7-115-42802-8",
			Title:       "Go语言实战",
			Author:      "William Kennedy",
			Price:       decimal.RequireFromString("89.005"),
			CategoryIDs: []uint{1, 2, 1},
		})
		require.NoError(t, err)

		assert.NotZero(t, b.ID)
		assert.Equal(t, "9787115428028", b.ISBN)
		assert.Equal(t, "89.01", b.Price.StringFixed(2))
		assert.Equal(t, []uint{1, 2}, b.CategoryIDs)
		assert.Len(t, repo.books, 1)
	})

	tests := []struct {
		name    string
		params  CreateParams
		wantErr error
	}{
		{
			name:    "ISBN位数错误",
			params:  CreateParams{ISBN: "12345", Title: "t", Price: decimal.NewFromInt(1)},
			wantErr: ErrInvalidISBN,
		},
		{
			name:    "价格为0",
			params:  CreateParams{ISBN: "9787115428028", Title: "t", Price: decimal.Zero},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "书名为空",
			params:  CreateParams{ISBN: "9787115428028", Title: " ", Price: decimal.NewFromInt(1)},
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "分类不存在",
			params:  CreateParams{ISBN: "9787115428028", Title: "t", Price: decimal.NewFromInt(1), CategoryIDs: []uint{1, 99}},
			wantErr: category.ErrCategoryNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			_, err := svc.CreateBook(ctx, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("ISBN重复", func(t *testing.T) {
		svc, _ := newTestService(&Book{ISBN: "9787115428028"})
		_, err := svc.CreateBook(ctx, CreateParams{ISBN: "9787115428028", Title: "t", Price: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, ErrISBNDuplicate)
	})
}

func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("部分字段更新", func(t *testing.T) {
		svc, _ := newTestService(&Book{ISBN: "9787115428028", Title: "旧书名", Author: "A", Price: decimal.NewFromInt(10), CategoryIDs: []uint{1}})
		price := decimal.RequireFromString("12.50")

		b, err := svc.UpdateBook(ctx, 1, UpdateParams{Title: "新书名", Price: &price})
		require.NoError(t, err)
		assert.Equal(t, "新书名", b.Title)
		assert.Equal(t, "A", b.Author)
		assert.True(t, b.Price.Equal(price))
		assert.Equal(t, []uint{1}, b.CategoryIDs, "未传分类时保持不变")
	})

	t.Run("清空分类", func(t *testing.T) {
		svc, _ := newTestService(&Book{ISBN: "9787115428028", CategoryIDs: []uint{1, 2}})
		b, err := svc.UpdateBook(ctx, 1, UpdateParams{CategoryIDs: []uint{}})
		require.NoError(t, err)
		assert.Empty(t, b.CategoryIDs)
	})

	t.Run("改为他人的ISBN", func(t *testing.T) {
		svc, _ := newTestService(&Book{ISBN: "9787115428028"}, &Book{ISBN: "7115428020"})
		_, err := svc.UpdateBook(ctx, 1, UpdateParams{ISBN: "7115428020"})
		assert.ErrorIs(t, err, ErrISBNDuplicate)
	})

	t.Run("价格非法", func(t *testing.T) {
		svc, _ := newTestService(&Book{ISBN: "9787115428028", Price: decimal.NewFromInt(10)})
		negative := decimal.NewFromInt(-1)
		_, err := svc.UpdateBook(ctx, 1, UpdateParams{Price: &negative})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("图书不存在", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.UpdateBook(ctx, 42, UpdateParams{Title: "x"})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestIsValidISBN(t *testing.T) {
	assert.True(t, isValidISBN("9787115428028"))
	assert.True(t, isValidISBN("711542802X"))
	assert.False(t, isValidISBN("97871154280"))
	assert.False(t, isValidISBN("97871154280AB"))
	assert.Equal(t, "9787115428028", normalizeISBN("978 7-115-42802-8"))
}
