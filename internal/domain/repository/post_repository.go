package repository

import (
	"context"
	"errors"

	"postboard/internal/domain/entity"
)

// ErrPostNotFound is returned when a post does not exist, or exists but is
// owned by a different user. The two cases are deliberately indistinguishable.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// Create persists a new post entity. The generated ID is written back into
	// the entity.
	Create(ctx context.Context, post *entity.Post) error

	// ListAll returns every post in the store, regardless of owner. The
	// reference behavior does not filter listings by owner; owner-scoped
	// listing would be a separate method on this interface.
	ListAll(ctx context.Context) ([]*entity.Post, error)

	// FindByIDAndOwner retrieves the post with the given ID only if it is
	// owned by ownerID. Returns ErrPostNotFound otherwise.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint64) (*entity.Post, error)

	// Delete removes the post with the given ID.
	Delete(ctx context.Context, id uint64) error
}
