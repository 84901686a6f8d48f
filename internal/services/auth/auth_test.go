package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/portfolio-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/password"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	services "github.com/magabrotheeeer/portfolio-backend/internal/services/auth"
	"github.com/magabrotheeeer/portfolio-backend/internal/session"
	"github.com/magabrotheeeer/portfolio-backend/internal/storage/repository"
)

// MockUserRepository реализует интерфейс services.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) CreateOAuthUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// fakeSessionCache минимальный кеш в памяти для session.Store
type fakeSessionCache struct {
	values map[string][]byte
}

func (f *fakeSessionCache) Get(_ context.Context, key string, result any) (bool, error) {
	raw, ok := f.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, result)
}

func (f *fakeSessionCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if f.values == nil {
		f.values = make(map[string][]byte)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = raw
	return nil
}

func (f *fakeSessionCache) Invalidate(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func newTestService(users services.UserRepository) *services.AuthService {
	maker := jwt.NewJWTMaker("test_secret_key", time.Hour)
	sessions := session.NewStore(&fakeSessionCache{}, "session_id", 24*time.Hour, false)
	return services.NewAuthService(users, maker, sessions)
}

func hashOf(t *testing.T, raw string) string {
	t.Helper()
	hash, err := password.GetHash(raw)
	require.NoError(t, err)
	return hash
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	users := new(MockUserRepository)
	users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Username == "alice" && u.Role == services.RoleUser && u.PasswordHash != "" && u.PasswordHash != "secret1"
	})).Return("uid-1", nil)

	svc := newTestService(users)

	regToken, user, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, services.RoleUser, user.Role)

	// Регистрация сразу выдает рабочий токен, отдельный логин не нужен
	require.NotEmpty(t, regToken)
	fromReg, err := svc.ValidateToken(context.Background(), regToken)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", fromReg.UserUID)

	users.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&models.User{
		UID:          "uid-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: user.PasswordHash,
		Role:         services.RoleUser,
	}, nil)

	token, identity, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", identity.Username)

	// Выданный токен резолвится обратно в того же пользователя
	resolved, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", resolved.UserUID)
	assert.Equal(t, "alice", resolved.Username)

	users.AssertExpectations(t)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	users := new(MockUserRepository)
	users.On("RegisterUser", mock.Anything, mock.Anything).Return("", repository.ErrAlreadyExists)

	svc := newTestService(users)

	_, _, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1")
	require.ErrorIs(t, err, services.ErrUserExists)
}

func TestAuthService_Register_NoMakerNoToken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("RegisterUser", mock.Anything, mock.Anything).Return("uid-1", nil)

	// Сессионный сервис создается без jwtMaker
	sessions := session.NewStore(&fakeSessionCache{}, "session_id", 24*time.Hour, false)
	svc := services.NewAuthService(users, nil, sessions)

	token, user, err := svc.Register(context.Background(), "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "uid-1", user.UID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&models.User{
		UID:          "uid-1",
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: hashOf(t, "secret1"),
		Role:         services.RoleUser,
	}, nil)

	svc := newTestService(users)

	token, identity, err := svc.Login(context.Background(), "a@x.com", "wrong")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, identity)
}

func TestAuthService_Login_UsernameWithAt(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetUserByEmail", mock.Anything, "dj@club").Return(nil, repository.ErrNotFound)
	users.On("GetUserByUsername", mock.Anything, "dj@club").Return(&models.User{
		UID:          "uid-2",
		Username:     "dj@club",
		PasswordHash: hashOf(t, "secret1"),
		Role:         services.RoleUser,
	}, nil)

	svc := newTestService(users)

	// Идентификатор с "@" без совпадения по email находится по имени
	token, identity, err := svc.Login(context.Background(), "dj@club", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "uid-2", identity.UserUID)
	users.AssertExpectations(t)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	svc := newTestService(users)

	_, _, err := svc.Login(context.Background(), "ghost", "secret1")
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_LoginSession_AndLogout(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetUserByUsername", mock.Anything, "alice").Return(&models.User{
		UID:          "uid-1",
		Username:     "alice",
		PasswordHash: hashOf(t, "secret1"),
		Role:         services.RoleUser,
	}, nil)

	svc := newTestService(users)

	sessionID, identity, err := svc.LoginSession(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, "uid-1", identity.UserUID)

	data, err := svc.ValidateSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", data.UserUID)

	require.NoError(t, svc.Logout(context.Background(), sessionID))

	_, err = svc.ValidateSession(context.Background(), sessionID)
	require.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestAuthService_OAuthLogin_FindOrCreate(t *testing.T) {
	profile := models.OAuthProfile{ProviderID: "google-123", Name: "Alice", Email: "a@x.com"}

	t.Run("первый вход создает пользователя", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByGoogleID", mock.Anything, "google-123").Return(nil, repository.ErrNotFound).Once()
		users.On("CreateOAuthUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.GoogleID == "google-123" && u.Username == "Alice" && u.Role == services.RoleUser
		})).Return("uid-7", nil).Once()

		svc := newTestService(users)

		sessionID, identity, err := svc.OAuthLogin(context.Background(), profile)
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		assert.Equal(t, "uid-7", identity.UserUID)
		users.AssertExpectations(t)
	})

	t.Run("повторный вход возвращает того же пользователя", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByGoogleID", mock.Anything, "google-123").Return(&models.User{
			UID:      "uid-7",
			Username: "Alice",
			GoogleID: "google-123",
			Role:     services.RoleUser,
		}, nil)

		svc := newTestService(users)

		_, identity, err := svc.OAuthLogin(context.Background(), profile)
		require.NoError(t, err)
		assert.Equal(t, "uid-7", identity.UserUID)
		users.AssertNotCalled(t, "CreateOAuthUser", mock.Anything, mock.Anything)
	})

	t.Run("гонка на создании разрешается повторным чтением", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetUserByGoogleID", mock.Anything, "google-123").Return(nil, repository.ErrNotFound).Once()
		users.On("CreateOAuthUser", mock.Anything, mock.Anything).Return("", repository.ErrAlreadyExists).Once()
		users.On("GetUserByGoogleID", mock.Anything, "google-123").Return(&models.User{
			UID:      "uid-7",
			Username: "Alice",
			GoogleID: "google-123",
			Role:     services.RoleUser,
		}, nil).Once()

		svc := newTestService(users)

		_, identity, err := svc.OAuthLogin(context.Background(), profile)
		require.NoError(t, err)
		assert.Equal(t, "uid-7", identity.UserUID)
		users.AssertExpectations(t)
	})
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	svc := newTestService(new(MockUserRepository))

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)
}
