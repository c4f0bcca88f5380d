package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Algorithm constants for accepted signing methods
const (
	AlgorithmHS256 = "HS256"
	AlgorithmRS256 = "RS256"
	AlgorithmES256 = "ES256"
)

// Claims are the token claims issued by the credential service
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	ID       int    `json:"id"`
	ShowNSFW bool   `json:"show_nsfw"`
}

// KeySource supplies public keys for asymmetric tokens by key ID
type KeySource interface {
	PublicKey(ctx context.Context, kid string) (interface{}, error)
}

// TokenResolver verifies JWTs and resolves them to identities.
//
// Tokens without a `kid` header must be HS256 and are checked against the
// shared secret. Tokens with a `kid` must be ES256 or RS256 and are checked
// against the key source. The header never selects the verification path
// on its own, so an HS256 token signed with a published public key is rejected.
type TokenResolver struct {
	keys   KeySource
	logger *slog.Logger
	issuer string
	secret []byte
}

// NewTokenResolver creates a token resolver.
// secret may be empty when only asymmetric tokens are accepted; keys may be nil
// when only HS256 tokens are accepted; issuer is enforced when non-empty.
func NewTokenResolver(secret []byte, issuer string, keys KeySource, logger *slog.Logger) *TokenResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenResolver{
		secret: secret,
		issuer: issuer,
		keys:   keys,
		logger: logger,
	}
}

// Resolve implements Resolver. Verification errors collapse to nil here and
// nowhere else.
func (r *TokenResolver) Resolve(ctx context.Context, token string) *Identity {
	claims, err := r.Verify(ctx, token)
	if err != nil {
		if err != ErrMissingToken {
			r.logger.Debug("token rejected", "error", err)
		}
		return nil
	}

	return &Identity{
		UserID:   claims.ID,
		Username: claims.Username,
		ShowNSFW: claims.ShowNSFW,
	}
}

// Verify checks the token's signature and claims
func (r *TokenResolver) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	tokenString = stripBearerPrefix(tokenString)
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{AlgorithmHS256, AlgorithmES256, AlgorithmRS256}),
	}
	if r.issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return r.keyFor(ctx, token)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token verification failed: invalid claims")
	}

	if claims.ID <= 0 {
		return nil, ErrMissingUserID
	}

	return claims, nil
}

// keyFor selects the verification key from the kid header
func (r *TokenResolver) keyFor(ctx context.Context, token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)

	if kid == "" {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("tokens without kid must use %s, got %v", AlgorithmHS256, token.Header["alg"])
		}
		if len(r.secret) == 0 {
			return nil, ErrNoSecret
		}
		return r.secret, nil
	}

	switch token.Method.(type) {
	case *jwt.SigningMethodECDSA, *jwt.SigningMethodRSA:
	default:
		return nil, fmt.Errorf("tokens with kid must use asymmetric signing, got %v", token.Header["alg"])
	}

	if r.keys == nil {
		return nil, ErrNoKeySource
	}
	return r.keys.PublicKey(ctx, kid)
}

// stripBearerPrefix removes the "Bearer " prefix from a token string
func stripBearerPrefix(tokenString string) string {
	tokenString = strings.TrimPrefix(strings.TrimSpace(tokenString), "Bearer ")
	return strings.TrimSpace(tokenString)
}
