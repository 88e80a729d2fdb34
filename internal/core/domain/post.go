package domain

// Post is a short text record owned by exactly one user. Visibility and
// deletion are always scoped to the owner.
type Post struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"-"`
	Content string `json:"content"`
}
