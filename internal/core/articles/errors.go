package articles

import "errors"

var (
	// ErrArticleNotFound indicates the requested article doesn't exist
	ErrArticleNotFound = errors.New("article not found")

	// ErrTitleEmpty indicates the article title is missing
	ErrTitleEmpty = errors.New("article title is required")

	// ErrContentEmpty indicates the article content is missing
	ErrContentEmpty = errors.New("article content is required")

	// ErrNotAuthor indicates the caller doesn't own the article
	ErrNotAuthor = errors.New("not the article author")

	// ErrSlugTaken indicates a concurrent create claimed the slug first
	ErrSlugTaken = errors.New("article slug already taken")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArticleNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleEmpty) ||
		errors.Is(err, ErrContentEmpty) ||
		errors.Is(err, ErrSlugTaken)
}

// IsForbidden checks if an error is an ownership error
func IsForbidden(err error) bool {
	return errors.Is(err, ErrNotAuthor)
}
