package api

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"inventory_api/internal/utils"
)

// Cache keys for the listing endpoints
const (
	itemsCacheKey  = "items:all"
	storesCacheKey = "stores:all"

	listingCacheTTL = 5 * time.Minute
)

// invalidateListings drops the cached listings after any item or store write.
// Store listings embed item representations, so item writes invalidate both.
func invalidateListings(ctx context.Context, rdb *redis.Client) {
	_ = utils.DeleteCache(ctx, rdb, itemsCacheKey)
	_ = utils.DeleteCache(ctx, rdb, storesCacheKey)
}
