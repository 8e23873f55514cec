package news

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"MarketPulse/internal/domain/models"
)

// Feed supplies raw news articles for a set of symbols.
type Feed interface {
	Fetch(ctx context.Context, symbols []string) ([]models.NewsArticle, error)
}

// cacheMaxEntries bounds the cache when clients rotate through many distinct
// symbol sets; expired entries are swept before live ones are evicted.
const cacheMaxEntries = 64

// cacheEntry holds a fetched batch with its expiry.
type cacheEntry struct {
	articles []models.NewsArticle
	exp      time.Time
}

// CachedFeed wraps a Feed with a TTL cache keyed by the symbol set, so a
// dashboard polling every minute does not hammer the upstream news API.
type CachedFeed struct {
	inner Feed
	ttl   time.Duration
	now   func() time.Time

	mu sync.Mutex
	m  map[string]cacheEntry
}

func NewCachedFeed(inner Feed, ttl time.Duration) *CachedFeed {
	return &CachedFeed{inner: inner, ttl: ttl, now: time.Now, m: make(map[string]cacheEntry)}
}

func (c *CachedFeed) Fetch(ctx context.Context, symbols []string) ([]models.NewsArticle, error) {
	key := cacheKey(symbols)
	now := c.now()

	c.mu.Lock()
	e, ok := c.m[key]
	if ok && now.Before(e.exp) {
		c.mu.Unlock()
		return e.articles, nil
	}
	if ok {
		// expired, drop before refetching
		delete(c.m, key)
	}
	c.mu.Unlock()

	articles, err := c.inner.Fetch(ctx, symbols)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.evictLocked(now)
	c.m[key] = cacheEntry{articles: articles, exp: now.Add(c.ttl)}
	c.mu.Unlock()
	return articles, nil
}

// evictLocked keeps the cache within cacheMaxEntries: expired entries go
// first, then arbitrary live ones if the map is still full. Caller holds c.mu.
func (c *CachedFeed) evictLocked(now time.Time) {
	if len(c.m) < cacheMaxEntries {
		return
	}
	for k, e := range c.m {
		if !now.Before(e.exp) {
			delete(c.m, k)
		}
	}
	for k := range c.m {
		if len(c.m) < cacheMaxEntries {
			return
		}
		delete(c.m, k)
	}
}

func cacheKey(symbols []string) string {
	sorted := make([]string, len(symbols))
	copy(sorted, symbols)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
