package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/micropost/content-api/internal/core/domain"
	"github.com/micropost/content-api/internal/core/ports"
)

const defaultListTTL = 5 * time.Minute

// PostService implements post creation, listing, and deletion, all scoped to
// the authenticated owner. List reads go through a TTL-bounded response cache
// whose key includes the owner id, so one caller can never observe another
// caller's result.
type PostService struct {
	repo    ports.PostRepository
	cache   ports.Cache
	listTTL time.Duration
	logger  zerolog.Logger
}

// NewPostService creates a PostService. If listTTL <= 0, defaultListTTL is used.
func NewPostService(repo ports.PostRepository, cache ports.Cache, listTTL time.Duration, logger zerolog.Logger) *PostService {
	if listTTL <= 0 {
		listTTL = defaultListTTL
	}
	return &PostService{repo: repo, cache: cache, listTTL: listTTL, logger: logger}
}

// Create inserts a post owned by ownerID and returns the new post's id.
// The owner's cached list is invalidated so the next List reflects the write.
func (s *PostService) Create(ctx context.Context, ownerID int64, content string) (int64, error) {
	id, err := s.repo.Create(ctx, ownerID, content)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", ownerID).Msg("failed to create post")
		return 0, err
	}

	s.cache.Delete(ctx, listKey(ownerID))
	s.logger.Info().Int64("post_id", id).Int64("owner_id", ownerID).Msg("post created")
	return id, nil
}

// List returns all posts owned by ownerID, serving repeated reads from the
// cache until the entry expires or a write invalidates it.
func (s *PostService) List(ctx context.Context, ownerID int64) ([]domain.Post, error) {
	key := listKey(ownerID)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var posts []domain.Post
		if err := json.Unmarshal(raw, &posts); err == nil {
			return posts, nil
		}
		// undecodable entry, drop it and fall through to the store
		s.cache.Delete(ctx, key)
	}

	posts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(posts); err == nil {
		s.cache.Set(ctx, key, raw, s.listTTL)
	}
	return posts, nil
}

// Delete permanently removes the post with the given id if ownerID owns it.
// Existence and ownership are checked in a single scoped statement, so a
// foreign post is indistinguishable from an absent one (ErrPostNotFound).
func (s *PostService) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.cache.Delete(ctx, listKey(ownerID))
	s.logger.Info().Int64("post_id", id).Int64("owner_id", ownerID).Msg("post deleted")
	return nil
}

func listKey(ownerID int64) string {
	return fmt.Sprintf("posts:%d", ownerID)
}
