package middleware

import (
	"context"
	"net/http"
	"strings"

	"Agora/internal/auth"
)

// Context keys for request-scoped authentication data
type contextKey string

const (
	IdentityKey     contextKey = "identity"
	UserAccessToken contextKey = "user_access_token"
)

// AuthMiddleware resolves Authorization: Bearer tokens
type AuthMiddleware struct {
	resolver auth.Resolver
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(resolver auth.Resolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// OptionalAuth loads the bearer token and, when it verifies, the identity.
// It never rejects a request: operations accept the token in the payload as
// well, and the service decides whether an identity is required.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserAccessToken, token)
		if identity := m.resolver.Resolve(ctx, token); identity != nil {
			ctx = context.WithValue(ctx, IdentityKey, identity)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// GetUserAccessToken extracts the bearer token from the request context
// Returns empty string if none was sent
func GetUserAccessToken(r *http.Request) string {
	token, _ := r.Context().Value(UserAccessToken).(string)
	return token
}

// GetIdentity extracts the verified identity from the context
// Returns nil for anonymous requests
func GetIdentity(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(IdentityKey).(*auth.Identity)
	return identity
}

// SetTestIdentity sets the identity in the context for testing purposes
func SetTestIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}
