// Package auth decides whether an HTTP request carries a user. The rest of
// the application only asks "is somebody signed in".
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated principal.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Guest bool   `json:"guest,omitempty"`
}

// Gate authenticates requests.
type Gate interface {
	Authenticate(r *http.Request) (User, bool)
}

type contextKey struct{}

// WithUser stores u in ctx.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// UserFrom returns the user stored by WithUser.
func UserFrom(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(contextKey{}).(User)
	return u, ok
}

func bearer(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Open lets every request through as a guest.
type Open struct{}

// Authenticate always succeeds.
func (Open) Authenticate(*http.Request) (User, bool) {
	return User{ID: "guest", Guest: true}, true
}

// StaticToken accepts a single shared bearer token.
type StaticToken struct {
	Token string
}

// Authenticate compares the bearer token in constant time.
func (g StaticToken) Authenticate(r *http.Request) (User, bool) {
	token, ok := bearer(r)
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(g.Token)) != 1 {
		return User{}, false
	}
	return User{ID: "token"}, true
}

// Claims are the JWT claims the gate reads.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// JWT accepts HS256 bearer tokens signed with a shared secret.
type JWT struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWT returns a gate that verifies tokens with secret.
func NewJWT(secret string) *JWT {
	return &JWT{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Authenticate verifies the bearer token. The subject becomes the user id,
// falling back to the email claim.
func (g *JWT) Authenticate(r *http.Request) (User, bool) {
	token, ok := bearer(r)
	if !ok {
		return User{}, false
	}
	claims, err := g.Verify(token)
	if err != nil {
		return User{}, false
	}
	id := claims.Subject
	if id == "" {
		id = claims.Email
	}
	if id == "" {
		return User{}, false
	}
	return User{ID: id, Email: claims.Email}, true
}

// Verify parses and validates a token string.
func (g *JWT) Verify(tokenString string) (*Claims, error) {
	token, err := g.parser.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return g.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// Issue signs a token for subject that expires after ttl.
func (g *JWT) Issue(subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// FromConfig picks the gate for the configured credentials. A JWT secret
// wins over a static token; with neither the API is open.
func FromConfig(authToken, jwtSecret string) Gate {
	switch {
	case jwtSecret != "":
		return NewJWT(jwtSecret)
	case authToken != "":
		return StaticToken{Token: authToken}
	default:
		return Open{}
	}
}

// Middleware rejects requests the gate does not authenticate and stores
// the user in the request context.
func Middleware(g Gate, reject http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			u, ok := g.Authenticate(r)
			if !ok {
				reject(w, r)
				return
			}
			next(w, r.WithContext(WithUser(r.Context(), u)))
		}
	}
}
