package usecase

import (
	"context"

	"postboard/internal/domain/entity"
)

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	OwnerID uint64
	Text    string `json:"text" validate:"required"`
}

// DeletePostInput identifies the post to delete and who is asking.
type DeletePostInput struct {
	PostID  uint64
	OwnerID uint64
}

// PostUsecase defines the interface for post operations. All operations are
// scoped by the authenticated owner resolved from the bearer token.
type PostUsecase interface {
	// Create persists a new post owned by input.OwnerID.
	Create(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	// List returns the post listing served to the given user, consulting the
	// per-user cache before the store.
	List(ctx context.Context, userID uint64) ([]*entity.Post, error)

	// Delete removes the identified post only when it is owned by
	// input.OwnerID, returning the deleted post. An absent post and a post
	// owned by someone else both fail with domainerrors.ErrPostNotFound.
	Delete(ctx context.Context, input *DeletePostInput) (*entity.Post, error)
}
