// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/portfolio-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/portfolio-backend/internal/lib/password"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	"github.com/magabrotheeeer/portfolio-backend/internal/session"
	"github.com/magabrotheeeer/portfolio-backend/internal/storage/repository"
)

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Ошибки аутентификации, по которым обработчики выбирают HTTP-статус.
var (
	// ErrInvalidCredentials неверная пара идентификатор/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists username или email уже заняты
	ErrUserExists = errors.New("user already exists")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового локального пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// CreateOAuthUser сохраняет пользователя внешнего провайдера и возвращает его UID.
	CreateOAuthUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByGoogleID возвращает пользователя по идентификатору провайдера.
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, выдачу и проверку токенов и сессий.
//
// Все зависимости передаются явно при создании, глобального состояния нет:
// процесс создает один AuthService на старте и передает его в HTTP-слой.
type AuthService struct {
	users    UserRepository
	local    CredentialVerifier
	oauth    CredentialVerifier
	jwtMaker jwt.Maker
	sessions *session.Store
}

// NewAuthService создает AuthService. Параметр sessions может быть nil
// для сервисов, работающих только с bearer-токенами.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, sessions *session.Store) *AuthService {
	return &AuthService{
		users:    users,
		local:    NewLocalVerifier(users),
		oauth:    NewOAuthVerifier(users),
		jwtMaker: jwtMaker,
		sessions: sessions,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной ролью user.
//
// Регистрация сразу логинит пользователя: вместе с записью возвращается
// подписанный bearer-токен, отдельный вызов Login не требуется.
// Для сервисов без jwtMaker (сессионных) токен пустой.
// Возвращает ErrUserExists, если username или email уже заняты.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (string, *models.User, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Role:         RoleUser,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", nil, ErrUserExists
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	user.UID = uid

	if s.jwtMaker == nil {
		return "", &user, nil
	}
	token, err := s.jwtMaker.GenerateToken(user.Username, user.Role, user.UID)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, &user, nil
}

// Login проверяет учетные данные и выдает подписанный bearer-токен.
//
// Identifier — username либо email. Неуспех любой природы со стороны
// пользователя дает ErrInvalidCredentials, токен при этом не выдается.
func (s *AuthService) Login(ctx context.Context, identifier, rawPassword string) (string, *Identity, error) {
	const op = "auth.Login"

	identity, err := s.local.Verify(ctx, Credentials{Identifier: identifier, Password: rawPassword})
	if err != nil {
		return "", nil, err
	}
	token, err := s.jwtMaker.GenerateToken(identity.Username, identity.Role, identity.UserUID)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, identity, nil
}

// LoginSession проверяет учетные данные и создает серверную сессию.
func (s *AuthService) LoginSession(ctx context.Context, identifier, rawPassword string) (string, *Identity, error) {
	const op = "auth.LoginSession"

	identity, err := s.local.Verify(ctx, Credentials{Identifier: identifier, Password: rawPassword})
	if err != nil {
		return "", nil, err
	}
	sessionID, err := s.sessions.Create(ctx, session.Data{
		UserUID:  identity.UserUID,
		Username: identity.Username,
		Role:     identity.Role,
	})
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return sessionID, identity, nil
}

// OAuthLogin выполняет find-or-create по профилю внешнего провайдера
// и создает серверную сессию. Первый вход создает пользователя,
// повторные возвращают того же.
func (s *AuthService) OAuthLogin(ctx context.Context, profile models.OAuthProfile) (string, *Identity, error) {
	const op = "auth.OAuthLogin"

	identity, err := s.oauth.Verify(ctx, Credentials{OAuth: &profile})
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	sessionID, err := s.sessions.Create(ctx, session.Data{
		UserUID:  identity.UserUID,
		Username: identity.Username,
		Role:     identity.Role,
	})
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return sessionID, identity, nil
}

// Logout уничтожает серверную сессию. Для bearer-токенов операции нет:
// токен остается валидным до естественного истечения.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Destroy(ctx, sessionID)
}

// ValidateToken проверяет подпись и срок действия JWT и возвращает личность пользователя.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*Identity, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &Identity{
		UserUID:  claims.UserUID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// ValidateSession возвращает данные сессии по идентификатору из cookie.
func (s *AuthService) ValidateSession(ctx context.Context, sessionID string) (*session.Data, error) {
	return s.sessions.Get(ctx, sessionID)
}
