package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

var (
	errMissingHeader = errors.New("missing authorization header")
	errBadFormat     = errors.New("invalid authorization format")
	errMissingToken  = errors.New("missing token")
)

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func bearerToken(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", errMissingHeader
	}
	const prefix = "Bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", errBadFormat
	}
	token := strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the user ID in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, err.Error())
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetUserID(r.Context(), userID)))
		}
	}
}

// OptionalAuth sets the user ID when a valid Bearer token is present and otherwise
// lets the request through anonymously. A bad token is treated like no token.
func OptionalAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				next(w, r)
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "optional token ignored", "path", r.URL.Path, "err", err)
				next(w, r)
				return
			}
			next(w, r.WithContext(SetUserID(r.Context(), userID)))
		}
	}
}
