package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserContextKey  contextKey = "auth.user"
	EmailContextKey contextKey = "auth.email"
)

var (
	ErrMissingCredentials = errors.New("missing authorization header")
	ErrInvalidCredentials = errors.New("invalid authorization header")
)

type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")

	if header == "" {
		return "", ErrMissingCredentials
	}

	token, ok := strings.CutPrefix(header, "Bearer ")

	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrInvalidCredentials
	}

	return strings.TrimSpace(token), nil
}

func User(ctx context.Context) string {
	user, _ := ctx.Value(UserContextKey).(string)
	return user
}
