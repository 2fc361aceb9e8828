package repository

import "interest-agent/domain"

// MockCache is the in-process CacheRepository used when no redis address is
// configured, and by tests. It holds results as values, no serialization.
type MockCache struct {
	Data map[string]domain.InterestResult
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]domain.InterestResult),
	}
}

func (m *MockCache) Get(key string) (domain.InterestResult, bool) {
	result, ok := m.Data[key]
	return result, ok
}

func (m *MockCache) Set(key string, result domain.InterestResult) error {
	m.Data[key] = result
	return nil
}
