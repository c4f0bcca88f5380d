package auth

import "errors"

var (
	// ErrMissingToken is returned when no token was supplied
	ErrMissingToken = errors.New("missing token")

	// ErrMissingUserID is returned when the token has no usable 'id' claim
	ErrMissingUserID = errors.New("missing 'id' claim")

	// ErrUnknownKey is returned when a token's kid isn't in the key set
	ErrUnknownKey = errors.New("unknown signing key")

	// ErrNoKeySource is returned when a kid-bearing token arrives but no JWKS is configured
	ErrNoKeySource = errors.New("no key source configured for asymmetric tokens")

	// ErrNoSecret is returned when an HS256 token arrives but no shared secret is configured
	ErrNoSecret = errors.New("no shared secret configured for HS256 tokens")
)
