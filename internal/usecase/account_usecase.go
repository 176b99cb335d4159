// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"postboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's public information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued session token after a successful login.
type LoginOutput struct {
	Token string
}

// AccountUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account. A second registration with the same
	// email fails with domainerrors.ErrEmailAlreadyRegistered; the duplicate
	// row is never persisted.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the credentials and issues a session token. Unknown
	// email and wrong password are logged distinctly but both surface as
	// domainerrors.ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
