package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"Cadenza/internal/auth"

	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	identity *auth.Identity
	err      error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func identityEcho() (http.Handler, *[]*auth.Identity) {
	var seen []*auth.Identity
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, GetIdentity(r))
		w.WriteHeader(http.StatusOK)
	})
	return handler, &seen
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{identity: &auth.Identity{UserID: "user-1"}})
	handler, seen := identityEcho()

	rec := httptest.NewRecorder()
	m.RequireAuth(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, *seen, "handler should not run without a token")
	assert.Contains(t, rec.Body.String(), "AuthRequired")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{err: auth.ErrInvalidToken})
	handler, seen := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	m.RequireAuth(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, *seen)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{identity: &auth.Identity{UserID: "user-1", Name: "Alice"}})
	handler, seen := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	m.RequireAuth(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, *seen, 1)
	assert.Equal(t, "user-1", (*seen)[0].UserID)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{err: auth.ErrInvalidToken})
	handler, seen := identityEcho()

	rec := httptest.NewRecorder()
	m.OptionalAuth(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, *seen, 1)
	assert.Nil(t, (*seen)[0])
}

func TestOptionalAuth_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	m := NewAuthMiddleware(&fakeVerifier{err: auth.ErrInvalidToken})
	handler, seen := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	m.OptionalAuth(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, *seen, 1)
	assert.Nil(t, (*seen)[0])
}
