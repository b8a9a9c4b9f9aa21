package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrArticleNotFound indicates the article being commented on doesn't exist
	ErrArticleNotFound = errors.New("article not found")

	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("comment content is required")

	// ErrContentTooLong indicates comment content exceeds the grapheme limit
	ErrContentTooLong = errors.New("comment content exceeds 10000 graphemes")

	// ErrParentNotFound indicates the referenced parent comment doesn't exist
	ErrParentNotFound = errors.New("parent comment not found")

	// ErrParentMismatch indicates the parent comment belongs to a different article
	ErrParentMismatch = errors.New("parent comment belongs to a different article")

	// ErrParentNotApproved indicates the parent comment is not approved
	ErrParentNotApproved = errors.New("parent comment is not approved")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrArticleNotFound)
}

// IsValidationError checks if an error is a validation error.
// Parent reference failures are validation errors: the external contract
// answers an invalid parentCommentId with 400, not 404.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentEmpty) ||
		errors.Is(err, ErrContentTooLong) ||
		errors.Is(err, ErrParentNotFound) ||
		errors.Is(err, ErrParentMismatch) ||
		errors.Is(err, ErrParentNotApproved)
}
