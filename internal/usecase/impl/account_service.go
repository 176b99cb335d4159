// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "postboard/internal/delivery/context"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/repository"
	"postboard/internal/domain/service"
	"postboard/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the registration process: hash the password, then
// persist the user inside a transaction. A uniqueness violation rolls back
// and surfaces as ErrEmailAlreadyRegistered, never as a generic fault.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Uint64("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the login process. Unknown email and wrong password are
// logged with their real cause but surface as one uniform
// ErrInvalidCredentials, so callers cannot enumerate accounts.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Internal cause logged, external error uniform.
			srv.log(ctx).Warn("Login failed, user not found", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		srv.log(ctx).Error("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Uint64("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}
