package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcategory "github.com/xiebiao/bookshop/internal/application/category"
	"github.com/xiebiao/bookshop/internal/domain/category"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseFilters(t *testing.T) {
	query := url.Values{
		"price":     {"10.00,20.00", "30.00"},
		"author":    {"Rob Pike"},
		"title":     {" , "},
		"page":      {"2"},
		"page_size": {"10"},
	}

	filters := parseFilters(query)

	assert.Equal(t, []string{"10.00", "20.00", "30.00"}, filters["price"])
	assert.Equal(t, []string{"Rob Pike"}, filters["author"])
	assert.NotContains(t, filters, "title")
	assert.NotContains(t, filters, "page")
	assert.NotContains(t, filters, "page_size")
}

type memoryCategoryRepo struct {
	items  map[uint]*category.Category
	nextID uint
}

func (r *memoryCategoryRepo) Create(_ context.Context, c *category.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.items[c.ID] = c
	return nil
}

func (r *memoryCategoryRepo) FindByID(_ context.Context, id uint) (*category.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memoryCategoryRepo) FindByIDs(context.Context, []uint) ([]*category.Category, error) {
	return nil, nil
}

func (r *memoryCategoryRepo) List(context.Context) ([]*category.Category, error) {
	var out []*category.Category
	for id := uint(1); id <= r.nextID; id++ {
		if c, ok := r.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCategoryRepo) Update(_ context.Context, c *category.Category) error {
	r.items[c.ID] = c
	return nil
}

func (r *memoryCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.items[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(r.items, id)
	return nil
}

func newCategoryRouter() *gin.Engine {
	h := NewCategoryHandler(appcategory.NewService(&memoryCategoryRepo{items: map[uint]*category.Category{}}))

	r := gin.New()
	r.POST("/categories", h.CreateCategory)
	r.GET("/categories", h.ListCategories)
	r.GET("/categories/:id", h.GetCategory)
	r.PUT("/categories/:id", h.UpdateCategory)
	r.DELETE("/categories/:id", h.DeleteCategory)
	return r
}

func request(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, data interface{}) response.Response {
	t.Helper()
	resp := response.Response{Data: data}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCategoryHandler(t *testing.T) {
	r := newCategoryRouter()

	t.Run("新增分类", func(t *testing.T) {
		w := request(r, http.MethodPost, "/categories", gin.H{"name": "编程", "description": "程序设计"})
		require.Equal(t, http.StatusCreated, w.Code)

		var dto appcategory.CategoryDto
		resp := decodeData(t, w, &dto)
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, uint(1), dto.ID)
		assert.Equal(t, "编程", dto.Name)
	})

	t.Run("缺少名称", func(t *testing.T) {
		w := request(r, http.MethodPost, "/categories", gin.H{"description": "无名"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, decodeData(t, w, nil).Code)
	})

	t.Run("查询与列表", func(t *testing.T) {
		w := request(r, http.MethodGet, "/categories/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = request(r, http.MethodGet, "/categories", nil)
		var list []appcategory.CategoryDto
		decodeData(t, w, &list)
		assert.Len(t, list, 1)
	})

	t.Run("非法ID", func(t *testing.T) {
		w := request(r, http.MethodGet, "/categories/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = request(r, http.MethodGet, "/categories/0", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("修改分类", func(t *testing.T) {
		w := request(r, http.MethodPut, "/categories/1", gin.H{"name": "计算机"})
		require.Equal(t, http.StatusOK, w.Code)

		var dto appcategory.CategoryDto
		decodeData(t, w, &dto)
		assert.Equal(t, "计算机", dto.Name)
	})

	t.Run("删除后不存在", func(t *testing.T) {
		w := request(r, http.MethodDelete, "/categories/1", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = request(r, http.MethodGet, "/categories/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apperrors.ErrCodeCategoryNotFound, decodeData(t, w, nil).Code)

		w = request(r, http.MethodDelete, "/categories/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
