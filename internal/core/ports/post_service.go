package ports

import (
	"context"

	"github.com/micropost/content-api/internal/core/domain"
)

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, ownerID int64, content string) (int64, error)
	List(ctx context.Context, ownerID int64) ([]domain.Post, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
