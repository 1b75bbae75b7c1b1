package service

import "context"

// SummaryCache is the server-side cache for precomputed dashboard summaries.
// Every entity mutation invalidates the whole set; dashboard reads go through
// it with a short TTL. Implemented on redis in internal/infra.
type SummaryCache interface {
	// GetJSON unmarshals the cached value for key into dest.
	// Returns false on a miss; a miss is not an error.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	// SetJSON stores v under key with the cache's TTL.
	SetJSON(ctx context.Context, key string, v any) error
	// Invalidate drops all dashboard summary keys.
	Invalidate(ctx context.Context) error
}

// Cache keys for the five summaries.
const (
	cacheKeyStats           = "dashboard:stats"
	cacheKeyInventoryStatus = "dashboard:inventory-status"
	cacheKeyTrends          = "dashboard:transaction-trends"
	cacheKeyLowStock        = "dashboard:low-stock-products"
	cacheKeyCategories      = "dashboard:category-distribution"
)
