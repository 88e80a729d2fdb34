package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/micropost/content-api/internal/core/domain"
	"github.com/micropost/content-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	issuer ports.TokenIssuer
}

func NewAuthService(repo ports.UserRepository, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Register creates a new account and returns it together with a freshly
// issued token. A duplicate email yields domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates the credentials and issues a fresh token. A missing
// account and a wrong password both collapse into ErrInvalidCredentials so
// the response never reveals whether the email is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
