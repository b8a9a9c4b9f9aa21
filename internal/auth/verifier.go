// Package auth verifies bearer tokens issued by the external identity
// provider. Cadenza never authenticates users itself: it trusts JWTs
// signed by the provider and checks them against the provider's
// published JWKS.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrInvalidToken wraps every verification failure surfaced to callers
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the verified caller extracted from a token
type Identity struct {
	UserID string // "sub" claim
	Name   string // "name" claim, may be empty
	Email  string // "email" claim, may be empty
}

// Verifier checks bearer tokens and extracts the caller identity
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// JWKSVerifier verifies token signatures against a cached JWKS fetched
// from the identity provider. Keys refresh in the background per the
// endpoint's cache headers, with a floor on the refresh interval.
type JWKSVerifier struct {
	cache   *jwk.Cache
	jwksURL string
	issuer  string
}

// NewJWKSVerifier registers the JWKS endpoint with a refreshing cache.
// issuer, when non-empty, is enforced against the token's "iss" claim.
func NewJWKSVerifier(ctx context.Context, jwksURL, issuer string) (*JWKSVerifier, error) {
	cache := jwk.NewCache(ctx)
	if err := cache.Register(jwksURL, jwk.WithMinRefreshInterval(15*time.Minute)); err != nil {
		return nil, fmt.Errorf("failed to register JWKS endpoint: %w", err)
	}

	// Fetch once up front so a bad URL fails at startup, not on the
	// first authenticated request.
	if _, err := cache.Refresh(ctx, jwksURL); err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS from %s: %w", jwksURL, err)
	}

	return &JWKSVerifier{
		cache:   cache,
		jwksURL: jwksURL,
		issuer:  issuer,
	}, nil
}

// Verify parses and validates the token, returning the caller identity.
func (v *JWKSVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	keySet, err := v.cache.Get(ctx, v.jwksURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS: %w", err)
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	tok, err := jwt.Parse([]byte(token), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if tok.Subject() == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}

	return &Identity{
		UserID: tok.Subject(),
		Name:   stringClaim(tok, "name"),
		Email:  stringClaim(tok, "email"),
	}, nil
}

func stringClaim(tok jwt.Token, name string) string {
	if v, ok := tok.Get(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
