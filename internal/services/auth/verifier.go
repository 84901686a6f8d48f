package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/portfolio-backend/internal/lib/password"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	"github.com/magabrotheeeer/portfolio-backend/internal/storage/repository"
)

// Identity подтвержденная личность пользователя, результат успешной проверки учетных данных.
type Identity struct {
	UserUID  string
	Username string
	Email    string
	Role     string
}

// Credentials входные данные для проверки. Для локального входа заполняются
// Identifier и Password, для OAuth — профиль провайдера.
type Credentials struct {
	Identifier string
	Password   string
	OAuth      *models.OAuthProfile
}

// CredentialVerifier проверяет учетные данные и возвращает личность пользователя.
//
// Реализации: LocalVerifier (username/email + пароль) и OAuthVerifier
// (find-or-create по идентификатору внешнего провайдера).
type CredentialVerifier interface {
	Verify(ctx context.Context, creds Credentials) (*Identity, error)
}

// LocalVerifier проверяет пару идентификатор/пароль по хранилищу пользователей.
type LocalVerifier struct {
	users UserRepository
}

// NewLocalVerifier создает верификатор локальных учетных данных.
func NewLocalVerifier(users UserRepository) *LocalVerifier {
	return &LocalVerifier{users: users}
}

// Verify ищет пользователя по email или username и сверяет bcrypt-хэш пароля.
//
// Отсутствие пользователя и неверный пароль неразличимы для вызывающего —
// оба случая дают ErrInvalidCredentials.
func (v *LocalVerifier) Verify(ctx context.Context, creds Credentials) (*Identity, error) {
	const op = "auth.LocalVerifier.Verify"

	if creds.OAuth != nil {
		return nil, fmt.Errorf("%s: oauth credentials passed to local verifier", op)
	}

	var user *models.User
	var err error
	if strings.Contains(creds.Identifier, "@") {
		user, err = v.users.GetUserByEmail(ctx, creds.Identifier)
		// Username тоже может содержать "@" — при промахе по email ищем по имени
		if errors.Is(err, repository.ErrNotFound) {
			user, err = v.users.GetUserByUsername(ctx, creds.Identifier)
		}
	} else {
		user, err = v.users.GetUserByUsername(ctx, creds.Identifier)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.PasswordHash == "" {
		// Пользователь создан через OAuth, локального пароля у него нет
		return nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, creds.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		UserUID:  user.UID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// OAuthVerifier реализует find-or-create по идентификатору субъекта внешнего провайдера.
type OAuthVerifier struct {
	users UserRepository
}

// NewOAuthVerifier создает верификатор OAuth-профилей.
func NewOAuthVerifier(users UserRepository) *OAuthVerifier {
	return &OAuthVerifier{users: users}
}

// Verify возвращает пользователя по идентификатору провайдера, создавая его
// при первом входе. Отсутствие записи не ошибка — это сигнал к созданию.
func (v *OAuthVerifier) Verify(ctx context.Context, creds Credentials) (*Identity, error) {
	const op = "auth.OAuthVerifier.Verify"

	if creds.OAuth == nil || creds.OAuth.ProviderID == "" {
		return nil, fmt.Errorf("%s: empty oauth profile", op)
	}
	profile := creds.OAuth

	user, err := v.users.GetUserByGoogleID(ctx, profile.ProviderID)
	if err == nil {
		return identityOf(user), nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	username := profile.Name
	if username == "" {
		username = "user-" + shortID(profile.ProviderID)
	}

	newUser := models.User{
		Username: username,
		Email:    profile.Email,
		Role:     RoleUser,
		GoogleID: profile.ProviderID,
	}
	uid, err := v.users.CreateOAuthUser(ctx, newUser)
	if err == nil {
		newUser.UID = uid
		return identityOf(&newUser), nil
	}
	if !errors.Is(err, repository.ErrAlreadyExists) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Либо имя занято другим пользователем, либо параллельный вход успел
	// создать запись с тем же google id. Сначала перечитываем по google id.
	if user, err = v.users.GetUserByGoogleID(ctx, profile.ProviderID); err == nil {
		return identityOf(user), nil
	}

	newUser.Username = username + "-" + shortID(profile.ProviderID)
	if uid, err = v.users.CreateOAuthUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	newUser.UID = uid
	return identityOf(&newUser), nil
}

func identityOf(u *models.User) *Identity {
	return &Identity{
		UserUID:  u.UID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func shortID(providerID string) string {
	if len(providerID) > 6 {
		return providerID[:6]
	}
	return providerID
}
