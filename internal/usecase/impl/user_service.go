// Package impl contains the implementations of the application's use cases.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Starting registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registeredUser *entity.User

	// The existence check and the insert run in one transaction so two
	// concurrent registrations of the same email cannot both pass the check;
	// the unique constraint on email backs this up and is translated to the
	// same conflict error by the repository.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Check if an account with this email already exists.
		// Matching is exact and case-sensitive.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			// If no error, an account was found.
			return domainerrors.ErrUserAlreadyExists.WrapMessage("registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		// 2. Create the user. Every registration produces a client; admin
		// accounts are provisioned out of band.
		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Address:      input.Address,
			Phone:        input.Phone,
			Role:         entity.RoleClient,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}

	token, err := srv.tokenService.Generate(registeredUser.ID, registeredUser.Email, registeredUser.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", "error", err, "userID", registeredUser.ID)

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}
	srv.log(ctx).Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.AuthOutput{
		User:  usecase.NewUserView(registeredUser),
		Token: token,
	}, nil
}

// Login verifies credentials and issues a bearer token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Starting login", "email", input.Email)

	// 1. Find the account. An unknown email yields the same generic error
	// as a wrong password so callers cannot enumerate registered emails.
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to look up email")
	}

	// 2. Check the password.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	// 3. Issue a token carrying the caller's identity and role.
	token, err := srv.tokenService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.log(ctx).Debug("User logged in successfully", "userID", user.ID)

	return &usecase.AuthOutput{
		User:  usecase.NewUserView(user),
		Token: token,
	}, nil
}

// GetProfile returns the full profile of the given user.
func (srv *userService) GetProfile(ctx context.Context, userID int64) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserView(user), nil
}
