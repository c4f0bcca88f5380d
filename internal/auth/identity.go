package auth

import "context"

// Identity is the verified user behind a token
type Identity struct {
	Username string
	UserID   int
	ShowNSFW bool
}

// Resolver turns an opaque token into an identity.
// A missing, malformed, expired or forged token yields nil: callers cannot
// tell those cases apart and treat them all as anonymous.
type Resolver interface {
	Resolve(ctx context.Context, token string) *Identity
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(ctx context.Context, token string) *Identity

// Resolve calls f(ctx, token)
func (f ResolverFunc) Resolve(ctx context.Context, token string) *Identity {
	return f(ctx, token)
}
