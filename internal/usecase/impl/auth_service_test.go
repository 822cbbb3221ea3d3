package impl

import (
	"context"
	"testing"
	"time"

	"stepwise/internal/domain/entity"
	domainerrors "stepwise/internal/domain/errors"
	"stepwise/internal/domain/repository"
	"stepwise/internal/domain/service"
	mockRepo "stepwise/internal/mocks/repository"
	mockSvc "stepwise/internal/mocks/service"
	"stepwise/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	codec    *mockSvc.MockTokenCodec
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	codec := &mockSvc.MockTokenCodec{}

	factory := &mockRepo.MockRepositoryFactory{}
	factory.On("UserRepo").Return(userRepo).Maybe()

	svc := NewAuthService(AuthServiceParams{
		TxManager: &mockRepo.StubTransactionManager{Factory: factory},
		UserRepo:  userRepo,
		Hasher:    hasher,
		Codec:     codec,
		Logger:    newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		hasher:   hasher,
		codec:    codec,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@x.com",
		Username: "alice",
		Password: "pw123",
	}

	fx.hasher.On("Hash", "pw123").Return("hashed_pw", nil)
	fx.userRepo.On("FindByEmail", mock.Anything, "alice@x.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 1
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed_pw", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@x.com",
		Username: "alice2",
		Password: "pw123",
	}

	fx.hasher.On("Hash", "pw123").Return("hashed_pw", nil)
	fx.userRepo.On("FindByEmail", mock.Anything, "alice@x.com").
		Return(&entity.User{ID: 1, Email: "alice@x.com"}, nil)

	user, err := fx.service.Register(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Email already registered", appErr.Message())

	// Email is checked first; the username lookup never runs.
	fx.userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "other@x.com",
		Username: "alice",
		Password: "pw123",
	}

	fx.hasher.On("Hash", "pw123").Return("hashed_pw", nil)
	fx.userRepo.On("FindByEmail", mock.Anything, "other@x.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByUsername", mock.Anything, "alice").
		Return(&entity.User{ID: 1, Username: "alice"}, nil)

	user, err := fx.service.Register(ctx, input)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Username already taken", appErr.Message())
}

func TestAuthService_Register_StoreWinsRace(t *testing.T) {
	// The pre-checks pass but a concurrent registration commits first; the
	// store's rejection translates into the same conflict errors.
	tests := []struct {
		name     string
		storeErr error
		wantErr  *domainerrors.BaseError
	}{
		{name: "email constraint", storeErr: repository.ErrDuplicateEmail, wantErr: domainerrors.ErrEmailTaken},
		{name: "username constraint", storeErr: repository.ErrDuplicateUsername, wantErr: domainerrors.ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			input := &usecase.RegisterInput{
				Email:    "alice@x.com",
				Username: "alice",
				Password: "pw123",
			}

			fx.hasher.On("Hash", "pw123").Return("hashed_pw", nil)
			fx.userRepo.On("FindByEmail", mock.Anything, "alice@x.com").Return(nil, repository.ErrUserNotFound)
			fx.userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
			fx.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(tt.storeErr)

			user, err := fx.service.Register(ctx, input)

			assert.Nil(t, user)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	storedUser := &entity.User{
		ID:           1,
		Email:        "alice@x.com",
		Username:     "alice",
		PasswordHash: "hashed_pw",
		IsActive:     true,
	}

	fx.userRepo.On("FindByUsername", mock.Anything, "alice").Return(storedUser, nil)
	fx.hasher.On("Check", "pw123", "hashed_pw").Return(true)
	fx.codec.On("TokenTTL").Return(7 * 24 * time.Hour)
	fx.codec.On("Issue", "alice", 7*24*time.Hour).Return("signed.token.value", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, storedUser, output.User)
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	// Unknown username and wrong password must be indistinguishable.
	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.On("FindByUsername", mock.Anything, "nouser").Return(nil, repository.ErrUserNotFound)

		output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "nouser", Password: "anything"})

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.On("FindByUsername", mock.Anything, "alice").
			Return(&entity.User{ID: 1, Username: "alice", PasswordHash: "hashed_pw"}, nil)
		fx.hasher.On("Check", "wrongpassword", "hashed_pw").Return(false)

		output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "wrongpassword"})

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_Resolve_Success(t *testing.T) {
	fx := createTestAuthService(t)

	storedUser := &entity.User{ID: 1, Username: "alice", Email: "alice@x.com"}

	fx.codec.On("Decode", "good.token").
		Return(&service.Claims{Subject: "alice", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.On("FindByUsername", mock.Anything, "alice").Return(storedUser, nil)

	user, err := fx.service.Resolve(context.Background(), "good.token")

	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
}

func TestAuthService_Resolve_DecodeFailures(t *testing.T) {
	// Every decode failure kind collapses into ErrUnauthenticated.
	for _, decodeErr := range []error{
		service.ErrTokenMalformed,
		service.ErrTokenExpired,
		service.ErrTokenInvalid,
	} {
		fx := createTestAuthService(t)

		fx.codec.On("Decode", "bad.token").Return(nil, decodeErr)

		user, err := fx.service.Resolve(context.Background(), "bad.token")

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated), "decode error %v", decodeErr)
	}
}

func TestAuthService_Resolve_MissingSubject(t *testing.T) {
	fx := createTestAuthService(t)

	fx.codec.On("Decode", "subjectless.token").
		Return(&service.Claims{ExpiresAt: time.Now().Add(time.Hour)}, nil)

	user, err := fx.service.Resolve(context.Background(), "subjectless.token")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_Resolve_OrphanedToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.codec.On("Decode", "orphan.token").
		Return(&service.Claims{Subject: "ghost", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Resolve(context.Background(), "orphan.token")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
