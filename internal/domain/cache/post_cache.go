// Package cache defines the caching contracts consumed by the use case layer.
package cache

import "postboard/internal/domain/entity"

// PostListingCache is a bounded, short-TTL cache of per-user post listings.
// Implementations must be safe for concurrent use.
//
// By contract, writes to the post store do NOT invalidate entries: a listing
// may be stale for up to the configured TTL. The interface exists so an
// invalidating (or distributed) variant can be substituted without touching
// callers.
type PostListingCache interface {
	// Get returns the cached listing for the user, or (nil, false) when the
	// entry is absent or its TTL has elapsed. An expired entry is never
	// returned.
	Get(userID uint64) ([]*entity.Post, bool)

	// Put stores the listing snapshot for the user, restarting its TTL.
	Put(userID uint64, posts []*entity.Post)
}
