package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultActor is recorded on audit entries when the request carries no identity
const DefaultActor = "Admin"

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by bearer tokens issued by the identity provider
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenValidator verifies HS256 tokens with a shared secret
type TokenValidator struct {
	secret []byte
}

// NewTokenValidator returns nil when no secret is configured, which disables identity extraction
func NewTokenValidator(secret string) *TokenValidator {
	if secret == "" {
		return nil
	}
	return &TokenValidator{secret: []byte(secret)}
}

// Validate parses and verifies a token
func (v *TokenValidator) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Issue signs a token. Used by tooling and tests; the service itself never issues tokens.
func (v *TokenValidator) Issue(userID, username, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

type contextKey string

const actorKey contextKey = "actor"

// WithActor stores the acting username on the context
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey, name)
}

// ActorFromContext returns the acting username, or DefaultActor
func ActorFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(actorKey).(string); ok && name != "" {
		return name
	}
	return DefaultActor
}
