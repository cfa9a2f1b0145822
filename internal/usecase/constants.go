package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds a database transaction so a
	// stuck commit cannot hold row locks indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultPageSize is the page size for listing endpoints.
	DefaultPageSize = 20

	// ProfileCacheKey is where the legacy company profile snapshot
	// lives in the cache.
	ProfileCacheKey = "company_profile"

	// ProfileCacheTTL is how long a resolved company profile is kept.
	ProfileCacheTTL = time.Hour
)
