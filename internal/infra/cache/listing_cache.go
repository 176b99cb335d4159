// Package cache provides in-process cache implementations for the domain
// caching contracts.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"postboard/config"
	domaincache "postboard/internal/domain/cache"
	"postboard/internal/domain/entity"
)

type listingEntry struct {
	posts     []*entity.Post
	expiresAt time.Time
}

// ListingCache is a capacity-bounded, TTL-bounded cache of per-user post
// listings. Recency is tracked on access, so the entry evicted past capacity
// is the least recently used one. The underlying LRU is internally locked and
// safe for concurrent use.
type ListingCache struct {
	entries *lru.Cache[uint64, listingEntry]
	ttl     time.Duration
	now     func() time.Time
}

// NewListingCache builds a cache with the configured capacity and TTL.
func NewListingCache(cfg *config.Config) (domaincache.PostListingCache, error) {
	capacity, ttl := 100, 300*time.Second
	if cfg != nil && cfg.Cache != nil {
		if cfg.Cache.ListingCapacity > 0 {
			capacity = cfg.Cache.ListingCapacity
		}
		if cfg.Cache.ListingTTL > 0 {
			ttl = cfg.Cache.ListingTTL
		}
	}

	entries, err := lru.New[uint64, listingEntry](capacity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create listing cache")
	}

	return &ListingCache{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Get returns the cached listing for the user. A lookup past the entry's TTL
// behaves as absent and drops the entry.
func (c *ListingCache) Get(userID uint64) ([]*entity.Post, bool) {
	entry, ok := c.entries.Get(userID)
	if !ok {
		return nil, false
	}

	if !c.now().Before(entry.expiresAt) {
		c.entries.Remove(userID)

		return nil, false
	}

	return entry.posts, true
}

// Put stores the listing snapshot for the user, restarting its TTL. Nothing
// invalidates an entry before expiry: post writes leave the cache untouched,
// so a listing may lag the store by up to the TTL.
func (c *ListingCache) Put(userID uint64, posts []*entity.Post) {
	c.entries.Add(userID, listingEntry{
		posts:     posts,
		expiresAt: c.now().Add(c.ttl),
	})
}
