package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/micropost/content-api/internal/core/domain"
)

// setupTestDB initializes an in-memory SQLite database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice@example.com", "hash-1")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if byEmail.ID != created.ID || byEmail.PasswordHash != "hash-1" {
		t.Fatalf("unexpected user: %+v", byEmail)
	}

	byID, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", byID)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "bob@example.com", "hash-1"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := repo.Create(ctx, "bob@example.com", "hash-2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 12345); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func seedUser(t *testing.T, db *sql.DB, email string) int64 {
	t.Helper()
	user, err := NewUserRepository(db).Create(context.Background(), email, "hash")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func TestPostRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "alice@example.com")

	first, err := repo.Create(ctx, owner, "hello")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := repo.Create(ctx, owner, "world")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if second <= first {
		t.Fatalf("expected increasing ids, got %d then %d", first, second)
	}

	posts, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(posts) != 2 || posts[0].Content != "hello" || posts[1].Content != "world" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if posts[0].OwnerID != owner {
		t.Fatalf("owner id not persisted: %+v", posts[0])
	}
}

func TestPostRepository_ListScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	if _, err := repo.Create(ctx, alice, "alice's post"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	bobPosts, err := repo.ListByOwner(ctx, bob)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(bobPosts) != 0 {
		t.Fatalf("bob sees foreign posts: %+v", bobPosts)
	}
}

func TestPostRepository_DeleteOwnershipAndIdempotence(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	id, err := repo.Create(ctx, alice, "alice's post")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// A foreign post must be indistinguishable from an absent one.
	if err := repo.Delete(ctx, id, bob); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound for foreign owner, got %v", err)
	}

	if err := repo.Delete(ctx, id, alice); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := repo.Delete(ctx, id, alice); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}

	posts, err := repo.ListByOwner(ctx, alice)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", posts)
	}
}
