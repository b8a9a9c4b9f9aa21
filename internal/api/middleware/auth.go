package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Cadenza/internal/auth"
)

// Context key for the verified caller identity
type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware enforces bearer-token authentication for protected
// routes. Tokens come from the external identity provider and are
// verified against its JWKS.
type AuthMiddleware struct {
	verifier auth.Verifier
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier auth.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth ensures the request carries a valid bearer token.
// On success the verified identity is injected into the context;
// otherwise the request is answered with 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.authenticate(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the identity when a valid token is present but
// lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			// Invalid token on an optional route: continue anonymously.
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	token := bearerToken(r)
	if token == "" {
		writeAuthError(w, "Missing or malformed Authorization header")
		return nil, false
	}

	identity, err := m.verifier.Verify(r.Context(), token)
	if err != nil {
		log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
			r.RemoteAddr, r.Method, r.URL.Path, err)
		writeAuthError(w, "Invalid or expired token")
		return nil, false
	}

	return identity, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// GetIdentity returns the verified caller identity from the request
// context, or nil for anonymous requests.
func GetIdentity(r *http.Request) *auth.Identity {
	identity, _ := r.Context().Value(identityKey).(*auth.Identity)
	return identity
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
