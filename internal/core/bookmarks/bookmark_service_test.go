package bookmarks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	userID    string
	articleID int64
}

type fakeBookmarkRepo struct {
	bookmarks map[pair]bool
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: make(map[pair]bool)}
}

func (f *fakeBookmarkRepo) Exists(ctx context.Context, userID string, articleID int64) (bool, error) {
	return f.bookmarks[pair{userID, articleID}], nil
}

func (f *fakeBookmarkRepo) Create(ctx context.Context, userID string, articleID int64) error {
	f.bookmarks[pair{userID, articleID}] = true
	return nil
}

func (f *fakeBookmarkRepo) Delete(ctx context.Context, userID string, articleID int64) error {
	delete(f.bookmarks, pair{userID, articleID})
	return nil
}

func (f *fakeBookmarkRepo) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	for p := range f.bookmarks {
		if p.articleID == articleID {
			count++
		}
	}
	return count, nil
}

type fakeArticleChecker struct {
	existing map[int64]bool
}

func (f *fakeArticleChecker) Exists(ctx context.Context, articleID int64) (bool, error) {
	return f.existing[articleID], nil
}

func TestToggle_OnThenOff(t *testing.T) {
	repo := newFakeBookmarkRepo()
	service := NewBookmarkService(repo, &fakeArticleChecker{existing: map[int64]bool{1: true}}, nil)

	resp, err := service.Toggle(context.Background(), "user-1", 1)
	require.NoError(t, err)
	assert.True(t, resp.Bookmarked)
	assert.Equal(t, int64(1), resp.Count)

	resp, err = service.Toggle(context.Background(), "user-1", 1)
	require.NoError(t, err)
	assert.False(t, resp.Bookmarked)
	assert.Equal(t, int64(0), resp.Count)
}

func TestToggle_CountsAcrossUsers(t *testing.T) {
	repo := newFakeBookmarkRepo()
	service := NewBookmarkService(repo, &fakeArticleChecker{existing: map[int64]bool{1: true}}, nil)

	_, err := service.Toggle(context.Background(), "user-1", 1)
	require.NoError(t, err)

	resp, err := service.Toggle(context.Background(), "user-2", 1)
	require.NoError(t, err)
	assert.True(t, resp.Bookmarked)
	assert.Equal(t, int64(2), resp.Count)
}

func TestToggle_UnknownArticle(t *testing.T) {
	service := NewBookmarkService(newFakeBookmarkRepo(), &fakeArticleChecker{existing: map[int64]bool{}}, nil)

	_, err := service.Toggle(context.Background(), "user-1", 999)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}
