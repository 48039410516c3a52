package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockUserRepository
	txUserRepo   *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(mockUserRepository)
	txUserRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokenService := new(mockTokenService)
	txManager := &fakeTransactionManager{factory: &fakeRepositoryFactory{users: txUserRepo}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(txManager, userRepo, hasher, tokenService, logger)

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		txUserRepo:   txUserRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
		Address:  "1 Main St, Springfield",
		Phone:    "555-0100",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.txUserRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 42
		}).
		Return(nil)
	fx.tokenService.On("Generate", int64(42), input.Email, entity.RoleClient).Return("signed.jwt", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt", output.Token)
	assert.Equal(t, int64(42), output.User.UserID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleClient.String(), output.User.Role)
	fx.txUserRepo.AssertExpectations(t)
}

func TestUserService_Register_StoresHashNotPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
		Address:  "1 Main St",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.txUserRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	var created *entity.User
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
			created.ID = 7
		}).
		Return(nil)
	fx.tokenService.On("Generate", int64(7), input.Email, entity.RoleClient).Return("signed.jwt", nil)

	_, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "hashed_password", created.PasswordHash)
	assert.NotEqual(t, input.Password, created.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
		Address:  "1 Main St",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.txUserRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: 1, Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	fx.txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.RegisterInput{
		Email: "not-an-email",
	}

	output, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, output)
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"name", "email", "password", "address"}, verr.Fields())
}

func TestUserService_Register_NilInput(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), nil)

	// A nil input (empty request body) is a client error, never an
	// internal one.
	assert.Nil(t, output)
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"body"}, verr.Fields())
	fx.txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_NilInput(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Login(context.Background(), nil)

	assert.Nil(t, output)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestUserService_Login_UsesRequestScopedLogger(t *testing.T) {
	fx := createTestUserService(t)

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "req-123")
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	stored := &entity.User{ID: 9, Email: "test@example.com", PasswordHash: "stored_hash"}
	fx.userRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: stored.Email, Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	// Failure logs carry the request id injected by the delivery layer.
	assert.Contains(t, buf.String(), "request_id=req-123")
	assert.Contains(t, buf.String(), "Login failed")
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:           9,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "stored_hash",
		Role:         entity.RoleClient,
	}

	fx.userRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.tokenService.On("Generate", stored.ID, stored.Email, stored.Role).Return("signed.jwt", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", output.Token)
	assert.Equal(t, stored.ID, output.User.UserID)
}

// An unknown email and a wrong password must produce the same error.
func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "Password123!",
	})

	stored := &entity.User{ID: 9, Email: "test@example.com", PasswordHash: "stored_hash"}
	fx.userRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
	fx.hasher.On("Check", "wrong-password", "stored_hash").Return(false)
	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    stored.Email,
		Password: "wrong-password",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.ErrorIs(t, unknownEmailErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "test@example.com").
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:      5,
		Name:    "Test User",
		Email:   "test@example.com",
		Address: "1 Main St",
		Role:    entity.RoleClient,
	}
	fx.userRepo.On("FindByID", ctx, int64(5)).Return(stored, nil)

	view, err := fx.service.GetProfile(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, view.UserID)
	assert.Equal(t, stored.Address, view.Address)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	view, err := fx.service.GetProfile(ctx, 404)

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
