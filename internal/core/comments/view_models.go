package comments

import "time"

// CommentView is the reader-facing shape of a comment.
// It deliberately has no email field: author emails are stripped from
// every read path regardless of viewer identity.
type CommentView struct {
	ID              int64     `json:"id"`
	ParentCommentID *int64    `json:"parentCommentId"`
	AuthorName      string    `json:"authorName"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	Level           int       `json:"level"`
}

// TreeNode is a comment with its replies nested under it.
// Children is always non-nil so it serializes as [] rather than null.
type TreeNode struct {
	CommentView
	Children []*TreeNode `json:"children"`
}
