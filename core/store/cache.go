package store

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/adalundhe/boardroom/core/review"
)

// DefaultCacheSize bounds how many subjects' result sets stay cached.
const DefaultCacheSize = 128

// CachedGateway adds a read-through LRU cache over a Gateway. Writes
// invalidate the cached subject so LoadAll never serves stale results.
type CachedGateway struct {
	inner Gateway
	cache *lru.Cache[string, []review.AgentResult]
}

// NewCachedGateway wraps a gateway with an LRU of size entries.
func NewCachedGateway(inner Gateway, size int) (*CachedGateway, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []review.AgentResult](size)
	if err != nil {
		return nil, err
	}
	return &CachedGateway{inner: inner, cache: cache}, nil
}

// Save writes through and drops the subject's cached result set.
func (g *CachedGateway) Save(ctx context.Context, subjectID string, res review.AgentResult) error {
	if err := g.inner.Save(ctx, subjectID, res); err != nil {
		return err
	}
	g.cache.Remove(subjectID)
	return nil
}

// LoadAll serves from cache when possible.
func (g *CachedGateway) LoadAll(ctx context.Context, subjectID string) ([]review.AgentResult, error) {
	if cached, ok := g.cache.Get(subjectID); ok {
		return cached, nil
	}
	results, err := g.inner.LoadAll(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	g.cache.Add(subjectID, results)
	return results, nil
}

// DeleteAll deletes through and drops the cached subject.
func (g *CachedGateway) DeleteAll(ctx context.Context, subjectID string) (int64, error) {
	count, err := g.inner.DeleteAll(ctx, subjectID)
	if err != nil {
		return 0, err
	}
	g.cache.Remove(subjectID)
	return count, nil
}
