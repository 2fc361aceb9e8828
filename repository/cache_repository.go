package repository

import "interest-agent/domain"

// CacheRepository caches projection results keyed by a parameter
// fingerprint. Lookups are best-effort: a miss only costs a recomputation.
type CacheRepository interface {
	Get(key string) (domain.InterestResult, bool)
	Set(key string, result domain.InterestResult) error
}
