// Package specification 根据请求参数动态构建图书查询条件
//
// 每个可过滤字段对应一个Provider，按key注册到ProviderManager；
// Builder遍历请求中的过滤参数，取出对应Provider生成条件，并用AND组合。
package specification

import (
	"gorm.io/gorm"
)

// Specification 查询条件，作用于books表
type Specification func(db *gorm.DB) *gorm.DB

// Provider 单个过滤字段的条件构建器
type Provider interface {
	// Key 请求参数名，如price
	Key() string

	// Specification 根据参数值生成条件，参数非法时返回参数错误
	Specification(params []string) (Specification, error)
}

// And 组合多个条件
func And(specs ...Specification) Specification {
	return func(db *gorm.DB) *gorm.DB {
		for _, spec := range specs {
			if spec != nil {
				db = spec(db)
			}
		}
		return db
	}
}
