package bookmarks

import "errors"

// ErrArticleNotFound indicates the article being bookmarked doesn't exist
var ErrArticleNotFound = errors.New("article not found")

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArticleNotFound)
}
