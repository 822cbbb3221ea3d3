// Package impl contains the implementation of the application's business
// logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "stepwise/internal/delivery/context"
	"stepwise/internal/domain/entity"
	domainerrors "stepwise/internal/domain/errors"
	"stepwise/internal/domain/repository"
	"stepwise/internal/domain/service"
	"stepwise/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	codec     service.TokenCodec
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Codec     service.TokenCodec
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		codec:     params.Codec,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The uniqueness pre-checks run in order,
// email first and then username, inside one transaction with the insert.
// They are a fast path only: a concurrent registration that wins the race is
// rejected by the store's unique constraint, and that rejection is
// translated into the same conflict errors.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	// Hash outside the transaction; bcrypt is CPU-bound.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := srv.checkRegistrationConflicts(ctx, userRepo, input); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return translateDuplicateKey(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Uint64("userID", uint64(newUser.ID)), slog.String("username", newUser.Username))

	return newUser, nil
}

// checkRegistrationConflicts runs the ordered uniqueness pre-checks.
func (srv *authService) checkRegistrationConflicts(ctx context.Context, userRepo repository.UserRepository, input *usecase.RegisterInput) error {
	_, err := userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return errors.WithStack(domainerrors.ErrEmailTaken)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email uniqueness")
	}

	_, err = userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		return errors.WithStack(domainerrors.ErrUsernameTaken)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username uniqueness")
	}

	return nil
}

// translateDuplicateKey maps a store-level unique rejection onto the same
// conflict taxonomy the pre-checks use.
func translateDuplicateKey(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.WithStack(domainerrors.ErrEmailTaken)
	case errors.Is(err, repository.ErrDuplicateUsername):
		return errors.WithStack(domainerrors.ErrUsernameTaken)
	default:
		return errors.Wrap(err, "failed to create user during registration")
	}
}

// Login verifies credentials and issues a bearer token. An unknown username
// and a wrong password both yield ErrInvalidCredentials; nothing upstream can
// tell which identifier was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// Check password outside any transaction; bcrypt is CPU-bound.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.codec.Issue(user.Username, srv.codec.TokenTTL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User logged in", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// Resolve maps a bearer token to the user it was issued for. Malformed,
// tampered and expired tokens, a missing subject, and a subject that no
// longer exists all collapse into ErrUnauthenticated so the response leaks
// nothing about which check failed.
func (srv *authService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.codec.Decode(token)
	if err != nil {
		srv.log(ctx).Debug("Token decode failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token has no subject")
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Valid token for a since-deleted user.
			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token subject not found")
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return user, nil
}
