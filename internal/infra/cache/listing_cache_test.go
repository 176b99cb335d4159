package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/config"
	"postboard/internal/domain/entity"
)

func newTestListingCache(t *testing.T, capacity int, ttl time.Duration) *ListingCache {
	t.Helper()

	cfg := &config.Config{
		Cache: &config.CacheConfig{
			ListingTTL:      ttl,
			ListingCapacity: capacity,
		},
	}

	cache, err := NewListingCache(cfg)
	require.NoError(t, err)

	return cache.(*ListingCache)
}

func postListing(texts ...string) []*entity.Post {
	posts := make([]*entity.Post, 0, len(texts))
	for i, text := range texts {
		posts = append(posts, &entity.Post{ID: uint64(i + 1), Text: text, OwnerID: 1})
	}

	return posts
}

func TestListingCache_PutThenGet(t *testing.T) {
	cache := newTestListingCache(t, 100, 300*time.Second)

	listing := postListing("hello", "world")
	cache.Put(1, listing)

	got, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, listing, got)
}

func TestListingCache_MissForUnknownUser(t *testing.T) {
	cache := newTestListingCache(t, 100, 300*time.Second)

	got, ok := cache.Get(42)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestListingCache_ExpiryBehavesAsAbsent(t *testing.T) {
	cache := newTestListingCache(t, 100, 300*time.Second)

	base := time.Now()
	cache.now = func() time.Time { return base }
	cache.Put(1, postListing("hello"))

	// Just before the TTL the entry is still served.
	cache.now = func() time.Time { return base.Add(300*time.Second - time.Millisecond) }
	_, ok := cache.Get(1)
	assert.True(t, ok)

	// At and past the TTL the entry behaves as absent.
	cache.now = func() time.Time { return base.Add(300 * time.Second) }
	got, ok := cache.Get(1)
	assert.False(t, ok)
	assert.Nil(t, got)

	// The expired entry was dropped, not just hidden.
	cache.now = func() time.Time { return base }
	_, ok = cache.Get(1)
	assert.False(t, ok)
}

func TestListingCache_PutRestartsTTL(t *testing.T) {
	cache := newTestListingCache(t, 100, 300*time.Second)

	base := time.Now()
	cache.now = func() time.Time { return base }
	cache.Put(1, postListing("old"))

	cache.now = func() time.Time { return base.Add(200 * time.Second) }
	fresh := postListing("new")
	cache.Put(1, fresh)

	cache.now = func() time.Time { return base.Add(400 * time.Second) }
	got, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, fresh, got)
}

func TestListingCache_LRUEvictionPastCapacity(t *testing.T) {
	cache := newTestListingCache(t, 100, 300*time.Second)

	for userID := uint64(1); userID <= 100; userID++ {
		cache.Put(userID, postListing(fmt.Sprintf("user %d", userID)))
	}

	// Touch user 1 so user 2 becomes the least recently used entry.
	_, ok := cache.Get(1)
	require.True(t, ok)

	cache.Put(101, postListing("user 101"))

	_, ok = cache.Get(2)
	assert.False(t, ok, "least recently used entry should be evicted")

	_, ok = cache.Get(1)
	assert.True(t, ok)
	_, ok = cache.Get(101)
	assert.True(t, ok)
}

func TestListingCache_ConcurrentAccess(t *testing.T) {
	cache := newTestListingCache(t, 100, 300*time.Second)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				userID := uint64(i % 50)
				cache.Put(userID, postListing("post"))
				cache.Get(userID)
			}
		}(worker)
	}
	wg.Wait()
}
