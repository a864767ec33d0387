package specification

import (
	"sort"
	"strings"
)

// Builder 把请求参数组合成一个查询条件
type Builder struct {
	manager *ProviderManager
}

// NewBuilder 创建Builder
func NewBuilder(manager *ProviderManager) *Builder {
	return &Builder{manager: manager}
}

// NewDefaultBuilder 注册全部图书过滤字段
func NewDefaultBuilder() (*Builder, error) {
	m, err := NewProviderManager(DefaultProviders()...)
	if err != nil {
		return nil, err
	}
	return NewBuilder(m), nil
}

// Build 按key排序后依次生成条件并AND组合
// 参数值支持逗号分隔与重复参数两种写法，空值被忽略；全部为空时返回nil
func (b *Builder) Build(filters map[string][]string) (Specification, error) {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var specs []Specification
	for _, key := range keys {
		params := splitParams(filters[key])
		if len(params) == 0 {
			continue
		}

		provider, err := b.manager.Provider(key)
		if err != nil {
			return nil, err
		}
		spec, err := provider.Specification(params)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	if len(specs) == 0 {
		return nil, nil
	}
	return And(specs...), nil
}

func splitParams(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
