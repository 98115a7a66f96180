package auth

import (
	"context"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretIsEmpty = errors.New("jwt secret is empty")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Principal represents the authenticated caller extracted from a JWT.
type Principal struct {
	Subject string // aggregate id of the caller
	Role    string // "customer" | "store" | "delivery_partner" | "admin"
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext retrieves the principal from context (if any).
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer with the given signing secret and token
// lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) (TokenIssuer, error) {
	if secret == "" {
		return TokenIssuer{}, ErrSecretIsEmpty
	}
	return TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given subject and role.
func (i TokenIssuer) Issue(subject, role string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates a token string and extracts the caller principal.
func (i TokenIssuer) Parse(tokenStr string) (Principal, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !tok.Valid {
		return Principal{}, ErrInvalidToken
	}

	claims, _ := tok.Claims.(*tokenClaims)
	if claims == nil || claims.Subject == "" || claims.Role == "" {
		return Principal{}, ErrInvalidClaims
	}
	return Principal{Subject: claims.Subject, Role: claims.Role}, nil
}
