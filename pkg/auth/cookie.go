package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken     = errors.New("missing authentication cookie")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidClaims    = errors.New("invalid token claims")
)

// Claims carries the identity embedded in the session cookie
type Claims struct {
	Username string `json:"cognito:username,omitempty"`
	jwt.RegisteredClaims
}

// UserContext is the authenticated principal attached to a request
type UserContext struct {
	Username string
}

// CookieVerifier validates the cookie-derived credential that gates the
// mutating review endpoints. It plays the role the upstream gateway
// authorizer would in a deployed stack.
type CookieVerifier struct {
	cookieName string
	secretKey  []byte
}

// NewCookieVerifier creates a verifier for HS256-signed session tokens
func NewCookieVerifier(cookieName, secret string) (*CookieVerifier, error) {
	if secret == "" {
		return nil, errors.New("secret key required for cookie verification")
	}
	if cookieName == "" {
		cookieName = "token"
	}
	return &CookieVerifier{cookieName: cookieName, secretKey: []byte(secret)}, nil
}

// FromRequest extracts and validates the credential from the request cookie
func (v *CookieVerifier) FromRequest(r *http.Request) (*UserContext, error) {
	cookie, err := r.Cookie(v.cookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return nil, ErrMissingToken
	}
	return v.Verify(cookie.Value)
}

// Verify validates a raw token string and returns the principal
func (v *CookieVerifier) Verify(tokenString string) (*UserContext, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method)
		}
		return v.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, ErrInvalidSignature
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		return nil, fmt.Errorf("%w: missing username", ErrInvalidClaims)
	}

	return &UserContext{Username: username}, nil
}

type contextKey string

const userContextKey contextKey = "auth_user"

// SetUserInContext attaches the principal to a request context
func SetUserInContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext retrieves the principal from a request context
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, errors.New("no user in context")
	}
	return user, nil
}
