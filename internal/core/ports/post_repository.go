package ports

import (
	"context"

	"github.com/micropost/content-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Every read and
// delete is scoped to the owning user id.
type PostRepository interface {
	Create(ctx context.Context, ownerID int64, content string) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Post, error)
	// Delete removes the post with the given id owned by ownerID. A post that
	// does not exist and a post owned by someone else are indistinguishable:
	// both yield domain.ErrPostNotFound.
	Delete(ctx context.Context, id, ownerID int64) error
}
