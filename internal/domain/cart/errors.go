package cart

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

var (
	// ErrCartItemNotFound 购物车条目不存在(或不属于当前用户)
	ErrCartItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车条目不存在")

	// ErrCartEmpty 购物车为空，无法下单
	ErrCartEmpty = apperrors.New(apperrors.ErrCodeCartEmpty, "购物车为空")

	// ErrInvalidQuantity 数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
)
