package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "[40900] 参数错误", ErrInvalidParams.Error())

	wrapped := Wrap(errors.New("connection refused"), "查询图书失败")
	assert.Equal(t, "[50000] 查询图书失败: connection refused", wrapped.Error())
}

func TestAppError_Is(t *testing.T) {
	notFound := New(ErrCodeOrderNotFound, "订单不存在")

	t.Run("附加内部错误后仍可匹配", func(t *testing.T) {
		err := notFound.WithErr(errors.New("record not found"))
		assert.True(t, errors.Is(err, notFound))
	})

	t.Run("经fmt包装后仍可匹配", func(t *testing.T) {
		err := fmt.Errorf("complete order: %w", notFound)
		assert.True(t, errors.Is(err, notFound))
	})

	t.Run("错误码不同不匹配", func(t *testing.T) {
		assert.False(t, errors.Is(ErrInvalidParams, notFound))
	})
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(fmt.Errorf("outer: %w", ErrForbidden))
	assert.Equal(t, ErrCodeForbidden, appErr.Code)

	plain := GetAppError(errors.New("boom"))
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.EqualError(t, plain.Err, "boom")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeCartEmpty, "购物车为空")))
	assert.True(t, IsNotFound(New(ErrCodeNotFound, "不存在")))
	assert.False(t, IsNotFound(ErrInvalidParams))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[int]int{
		0:                      http.StatusOK,
		ErrCodeUnauthorized:    http.StatusUnauthorized,
		ErrCodeTokenExpired:    http.StatusUnauthorized,
		ErrCodeForbidden:       http.StatusForbidden,
		ErrCodeOrderNotFound:   http.StatusNotFound,
		ErrCodeRegistration:    http.StatusConflict,
		ErrCodeISBNDuplicate:   http.StatusConflict,
		ErrCodeInvalidParams:   http.StatusBadRequest,
		ErrCodeWeakPassword:    http.StatusBadRequest,
		ErrCodeInternal:        http.StatusInternalServerError,
		ErrCodeDatabaseError:   http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code=%d", code)
	}
}
