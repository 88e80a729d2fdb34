package ports

import (
	"context"

	"github.com/micropost/content-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
