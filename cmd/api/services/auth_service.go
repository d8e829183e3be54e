package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"blogdeck/cmd/api/auth"
	"blogdeck/cmd/internal/logger"
	"blogdeck/models"
)

// ErrInvalidCredentials hides whether the email or the password was
// wrong.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// AuthUserStore is the user surface sign-in needs.
type AuthUserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// AuthService verifies credentials and issues/validates access tokens.
type AuthService struct {
	users AuthUserStore
	jwt   *auth.JWTManager
}

func NewAuthService(users AuthUserStore, jwt *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Login verifies the credentials of an active account and returns a
// signed access token plus the profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.Active {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(u.ID, u.Role)
	if err != nil {
		return "", nil, err
	}
	if err := s.users.TouchLastLogin(ctx, u.ID); err != nil {
		logger.Log.Warnf("failed to stamp last_login_at for user %d: %v", u.ID, err)
	}
	return token, u, nil
}

// Parse validates an access token. Satisfies middleware.TokenParser.
func (s *AuthService) Parse(token string) (int64, string, error) {
	return s.jwt.Parse(token)
}

// HashPassword is used by seeding/tooling when creating accounts.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
