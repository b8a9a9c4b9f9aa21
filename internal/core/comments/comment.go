package comments

import "time"

// Comment statuses. Only approved comments are ever surfaced to readers;
// the other values exist for moderation tooling.
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusRejected = "rejected"
)

// Comment represents a stored comment row on an article.
// AuthorEmail is kept for notification purposes only and must never
// reach a view model.
type Comment struct {
	ID          int64
	ArticleID   int64
	ParentID    *int64
	AuthorID    string
	AuthorName  string
	AuthorEmail string
	Content     string
	Status      string
	CreatedAt   time.Time
}
