package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	mockRepo "postboard/internal/mocks/repository"
	mockSvc "postboard/internal/mocks/service"
	"postboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$10$hashedpassword", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 1
				}).
				Return(nil)

			err := fn(mockFactory)
			assert.NoError(t, err)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, uint64(1), output.User.ID)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.Equal(t, "$2a$10$hashedpassword", output.User.PasswordHash)
}

func TestAccountService_Register_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$10$hashedpassword", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrEmailAlreadyRegistered)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}
	storedUser := &entity.User{
		ID:           1,
		Email:        input.Email,
		PasswordHash: "$2a$10$hashedpassword",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(storedUser.Email).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong-password",
	}
	storedUser := &entity.User{
		ID:           1,
		Email:        input.Email,
		PasswordHash: "$2a$10$hashedpassword",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAccountService_Login_FailuresAreUniform(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           1,
		Email:        "known@example.com",
		PasswordHash: "$2a$10$hashedpassword",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "known@example.com").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong", storedUser.PasswordHash).Return(false)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "wrong"})
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "known@example.com", Password: "wrong"})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))

	var unknownAppErr domainerrors.AppError
	var wrongAppErr domainerrors.AppError
	require.True(t, errors.As(unknownEmailErr, &unknownAppErr))
	require.True(t, errors.As(wrongPasswordErr, &wrongAppErr))
	assert.Equal(t, unknownAppErr.Message(), wrongAppErr.Message())
	assert.Equal(t, unknownAppErr.HTTPCode(), wrongAppErr.HTTPCode())
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}
	storedUser := &entity.User{
		ID:           1,
		Email:        input.Email,
		PasswordHash: "$2a$10$hashedpassword",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(storedUser.Email).Return("", errors.New("signing failure"))

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to issue token")
}
