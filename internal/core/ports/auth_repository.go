package ports

import (
	"context"

	"github.com/micropost/content-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a new user; a duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
