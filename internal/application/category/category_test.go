package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/category"
)

type memoryRepo struct {
	items  map[uint]*category.Category
	nextID uint
}

func (r *memoryRepo) Create(_ context.Context, c *category.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.items[c.ID] = c
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id uint) (*category.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memoryRepo) FindByIDs(context.Context, []uint) ([]*category.Category, error) { return nil, nil }

func (r *memoryRepo) List(context.Context) ([]*category.Category, error) {
	var out []*category.Category
	for id := uint(1); id <= r.nextID; id++ {
		if c, ok := r.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryRepo) Update(_ context.Context, c *category.Category) error {
	r.items[c.ID] = c
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(r.items, id)
	return nil
}

func TestService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&memoryRepo{items: map[uint]*category.Category{}})

	created, err := svc.Create(ctx, CategoryRequest{Name: "编程", Description: "程序设计"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	_, err = svc.Create(ctx, CategoryRequest{Name: " "})
	assert.ErrorIs(t, err, category.ErrInvalidName)

	updated, err := svc.Update(ctx, created.ID, CategoryRequest{Name: "计算机", Description: "计算机科学"})
	require.NoError(t, err)
	assert.Equal(t, "计算机", updated.Name)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	_, err = svc.Update(ctx, created.ID, CategoryRequest{Name: "x"})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
