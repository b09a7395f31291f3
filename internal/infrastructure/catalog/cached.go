package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/forkful/v2/internal/domain/grocer"
	"github.com/forkful/v2/internal/ports/outbound"
	"go.uber.org/zap"
)

// CachedCatalog decorates a ProductCatalog with read-through caching. Pool
// lookups are the hot path of batch matching and the pools change rarely,
// so cache failures only cost a pass-through lookup, never a match.
type CachedCatalog struct {
	next   outbound.ProductCatalog
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedCatalog wraps a catalog with a cache.
func NewCachedCatalog(next outbound.ProductCatalog, cache outbound.CacheRepository, ttl time.Duration, logger *zap.Logger) outbound.ProductCatalog {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CachedCatalog{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("catalog-cache"),
	}
}

// Candidates serves the pool from cache when possible.
func (c *CachedCatalog) Candidates(ctx context.Context, canonicalKey, category string) ([]grocer.VendorProduct, error) {
	key := fmt.Sprintf("catalog:pool:%s:%s", canonicalKey, category)

	if data, err := c.cache.Get(ctx, key); err == nil && data != nil {
		var pool []grocer.VendorProduct
		if err := json.Unmarshal(data, &pool); err == nil {
			return pool, nil
		}
		c.cache.Delete(ctx, key)
	}

	pool, err := c.next.Candidates(ctx, canonicalKey, category)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(pool); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Debug("Failed to cache product pool",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	return pool, nil
}

// SubstitutionHint passes through; hints are static data.
func (c *CachedCatalog) SubstitutionHint(name string) (string, bool) {
	return c.next.SubstitutionHint(name)
}
