package usecase

import (
	"context"

	"postboard/internal/domain/entity"
)

// IdentityUsecase resolves a bearer token to a persisted user.
type IdentityUsecase interface {
	// Resolve verifies the token and looks up the user it asserts. An
	// invalid/expired token and a token whose subject no longer exists both
	// fail with domainerrors.ErrUnauthorized, so callers cannot tell which
	// case occurred.
	Resolve(ctx context.Context, token string) (*entity.User, error)
}
