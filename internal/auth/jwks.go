package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// JWKSKeySource looks up public keys in a JSON Web Key Set
type JWKSKeySource struct {
	fetch func(ctx context.Context) (jwk.Set, error)
}

// NewJWKSKeySource registers a remote JWKS with an auto-refreshing cache and
// performs the first fetch so misconfiguration fails at startup
func NewJWKSKeySource(ctx context.Context, url string, refresh time.Duration) (*JWKSKeySource, error) {
	cache := jwk.NewCache(ctx)
	if err := cache.Register(url, jwk.WithMinRefreshInterval(refresh)); err != nil {
		return nil, fmt.Errorf("failed to register JWKS %s: %w", url, err)
	}
	if _, err := cache.Refresh(ctx, url); err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS %s: %w", url, err)
	}

	return &JWKSKeySource{
		fetch: func(ctx context.Context) (jwk.Set, error) {
			return cache.Get(ctx, url)
		},
	}, nil
}

// NewStaticKeySource serves keys from a fixed set
func NewStaticKeySource(set jwk.Set) *JWKSKeySource {
	return &JWKSKeySource{
		fetch: func(context.Context) (jwk.Set, error) {
			return set, nil
		},
	}
}

// PublicKey implements KeySource
func (s *JWKSKeySource) PublicKey(ctx context.Context, kid string) (interface{}, error) {
	set, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS: %w", err)
	}

	key, ok := set.LookupKeyID(kid)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, kid)
	}

	var raw interface{}
	if err := key.Raw(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode key %s: %w", kid, err)
	}
	return raw, nil
}
