package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/micropost/content-api/internal/core/domain"
)

// PostRepository implements ports.PostRepository on the posts table.
type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, ownerID int64, content string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO posts(content, owner_id) VALUES(?, ?)", content, ownerID)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	return id, nil
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, owner_id, content FROM posts WHERE owner_id = ? ORDER BY id", ownerID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Content); err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Delete removes the post in a single statement scoped to both id and owner,
// so existence and ownership are checked atomically: a foreign post and an
// absent post both report ErrPostNotFound.
func (r *PostRepository) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM posts WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if affected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
