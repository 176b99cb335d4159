package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/domain/service"
	mockRepo "postboard/internal/mocks/repository"
	mockSvc "postboard/internal/mocks/service"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewIdentityService(IdentityServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       logger,
	})

	return identityServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestIdentityService_Resolve_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: "$2a$10$hashedpassword",
	}

	fx.tokenService.EXPECT().Verify("signed.jwt.token").Return(storedUser.Email, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)

	user, err := fx.service.Resolve(ctx, "signed.jwt.token")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, storedUser.ID, user.ID)
	assert.Equal(t, storedUser.Email, user.Email)
}

func TestIdentityService_Resolve_InvalidToken(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("garbage").Return("", service.ErrInvalidToken)

	user, err := fx.service.Resolve(ctx, "garbage")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

// A valid token whose subject no longer exists must look exactly like a bad
// token to the caller.
func TestIdentityService_Resolve_SubjectGone(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("signed.jwt.token").Return("gone@example.com", nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Resolve(ctx, "signed.jwt.token")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestIdentityService_Resolve_RepositoryFailure(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Verify("signed.jwt.token").Return("test@example.com", nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(nil, errors.New("connection refused"))

	user, err := fx.service.Resolve(ctx, "signed.jwt.token")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.Contains(t, err.Error(), "failed to find user by email")
}
