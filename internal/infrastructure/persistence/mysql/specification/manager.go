package specification

import (
	"fmt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// ProviderManager 按key查找Provider
type ProviderManager struct {
	providers map[string]Provider
}

// NewProviderManager 同一个key注册两次返回错误
func NewProviderManager(providers ...Provider) (*ProviderManager, error) {
	m := &ProviderManager{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		if _, exists := m.providers[p.Key()]; exists {
			return nil, fmt.Errorf("重复注册的过滤条件: %s", p.Key())
		}
		m.providers[p.Key()] = p
	}
	return m, nil
}

// Provider 未注册的key返回参数错误
func (m *ProviderManager) Provider(key string) (Provider, error) {
	p, ok := m.providers[key]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidParams, "不支持的过滤条件: %s", key)
	}
	return p, nil
}
