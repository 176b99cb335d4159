package entity

import "time"

// MaxPostBytes is the upper bound on the UTF-8 encoded size of a post body.
const MaxPostBytes = 1 << 20

// Post is a short piece of text owned by exactly one user. Posts have no
// update operation; they are created and, optionally, deleted by their owner.
type Post struct {
	ID        uint64    // Auto-incremented primary key.
	Text      string    // UTF-8 text body, at most MaxPostBytes encoded bytes.
	OwnerID   uint64    // References the owning User's ID.
	CreatedAt time.Time // Timestamp of creation.
}
