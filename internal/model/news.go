package model

import "time"

// News is a single blog post. Categories and AuthorName are filled by
// lookups against the join table and the users table.
type News struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CreatedDate time.Time  `json:"created_date"`
	IsPrivate   bool       `json:"is_private"`
	UserID      int64      `json:"user_id"`
	AuthorName  string     `json:"author_name"`
	Categories  []Category `json:"categories"`
}

// CategoryIDs returns the ids of the categories attached to the post.
func (n News) CategoryIDs() []int64 {
	ids := make([]int64, len(n.Categories))
	for i, c := range n.Categories {
		ids[i] = c.ID
	}
	return ids
}

// NewsInput is the bound body of the add/edit news form.
type NewsInput struct {
	Title       string  `json:"title" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	IsPrivate   bool    `json:"is_private"`
	CategoryIDs []int64 `json:"categories"`
}
