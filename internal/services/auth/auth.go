// Package auth содержит бизнес-логику регистрации и аутентификации пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/movie-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/movie-catalog/internal/lib/password"
	"github.com/magabrotheeeer/movie-catalog/internal/models"
	"github.com/magabrotheeeer/movie-catalog/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при любой ошибке входа: неизвестный email
// и неверный пароль неразличимы для клиента, чтобы исключить перебор адресов.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя; уникальность email
	// гарантирует индекс хранилища.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и выдачу JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Email приводится к нижнему регистру, роль по умолчанию — "user".
// Предварительная проверка занятости email носит информационный характер:
// гонку разрешает уникальный индекс хранилища, возвращающий ErrEmailTaken.
// Ответ не содержит хэша пароля.
func (s *AuthService) Register(ctx context.Context, email, rawPassword, role string) (*models.UserView, error) {
	const op = "services.auth.Register"

	email = strings.ToLower(strings.TrimSpace(email))
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		role = models.RoleUser
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	created, err := s.users.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	view := created.View()
	return &view, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Отсутствующий пользователь и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.UserView, error) {
	const op = "services.auth.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	view := user.View()
	return token, &view, nil
}

// GetByEmail возвращает публичное представление пользователя.
func (s *AuthService) GetByEmail(ctx context.Context, email string) (*models.UserView, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	view := user.View()
	return &view, nil
}
