package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/micropost/content-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository on the users table.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user row. The UNIQUE index on email enforces the
// one-account-per-email invariant at the store level; a violation surfaces
// as domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users(email, password_hash) VALUES(?, ?)", email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &domain.User{ID: id, Email: email, PasswordHash: passwordHash}, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash FROM users WHERE email = ?", email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash FROM users WHERE id = ?", id))
}

func (r *UserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint error.
// Matching on the message keeps the check portable across sqlite drivers.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
