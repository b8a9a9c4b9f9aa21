package articles

import "time"

// Article statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article represents a blog article. Content is stored as markdown and
// rendered to sanitized HTML on the read path, never at write time.
// CommentCount and ViewCount are denormalized counters maintained by
// recompute-and-overwrite, not increments.
type Article struct {
	ID           int64
	Slug         string
	Title        string
	Content      string
	AuthorID     string
	AuthorName   string
	Status       string
	CommentCount int64
	ViewCount    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	PublishedAt  *time.Time
}
