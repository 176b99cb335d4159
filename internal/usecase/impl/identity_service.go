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

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve verifies the token and loads the user it asserts. Token failures
// and a missing user collapse into the same ErrUnauthorized so the response
// never leaks which check failed.
func (srv *identityService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	email, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Warn("Token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token verification failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token subject no longer resolves to a user", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject not found")
		}
		srv.log(ctx).Error("Failed to resolve token subject", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}
