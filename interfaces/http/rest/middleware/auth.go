package middleware

import (
	"errors"
	"net/http"

	"moviedb-backend/pkg/auth"
	"moviedb-backend/pkg/common"
	apperrors "moviedb-backend/pkg/errors"

	"go.uber.org/zap"
)

// Authenticate gates mutating endpoints behind the session cookie. The
// verifier is injected rather than built from process environment so
// tests and alternative entry points can supply their own.
func Authenticate(verifier *auth.CookieVerifier, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := verifier.FromRequest(r)
			if err != nil {
				logger.Warn("request rejected by authorizer",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.Error(err),
				)
				common.RespondError(w, apperrors.NewUnauthorizedError(authMessage(err)))
				return
			}

			ctx := auth.SetUserInContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authMessage picks a client-safe message for a verification failure
func authMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "missing authentication cookie"
	case errors.Is(err, auth.ErrExpiredToken):
		return "token has expired"
	case errors.Is(err, auth.ErrInvalidSignature):
		return "invalid token signature"
	default:
		return "invalid token"
	}
}
