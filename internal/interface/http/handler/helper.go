package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// bindFailed 参数绑定或校验失败
func bindFailed(c *gin.Context, err error) {
	response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
}

// pathID 解析路径中的正整数ID
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "无效的"+name)
		return 0, false
	}
	return uint(id), true
}

// paginationKeys 搜索时不作为过滤条件的参数
var paginationKeys = map[string]struct{}{"page": {}, "page_size": {}}

// parseFilters 将查询参数转换为过滤条件
// 同一参数可重复出现，也可以用逗号分隔多个值：
//
//	?price=10.00,20.00&author=Rob%20Pike&price=30.00
//	→ {"price": ["10.00","20.00","30.00"], "author": ["Rob Pike"]}
func parseFilters(query url.Values) map[string][]string {
	filters := make(map[string][]string)
	for key, values := range query {
		if _, skip := paginationKeys[key]; skip {
			continue
		}
		for _, v := range values {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					filters[key] = append(filters[key], part)
				}
			}
		}
	}
	return filters
}
