package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fintrack-go/internal/auth"
	"fintrack-go/internal/config"
)

type contextKey int

const userIDKey contextKey = iota

// TokenAuth validates the signed cookie credential on every request,
// statelessly. An expired token answers 401 and a malformed or badly signed
// one answers 403, so clients can tell "log in again" from "bad credential".
type TokenAuth struct {
	secret     string
	cookieName string
}

func NewTokenAuth(cfg config.AuthConfig) *TokenAuth {
	return &TokenAuth{
		secret:     cfg.JWTSecret,
		cookieName: cfg.CookieName,
	}
}

func (a *TokenAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(a.cookieName)
		if err != nil || cookie.Value == "" {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		claims, err := auth.ParseToken(a.secret, cookie.Value)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				writeAuthError(w, http.StatusUnauthorized, "session expired, log in again")
				return
			}
			writeAuthError(w, http.StatusForbidden, "invalid credential")
			return
		}

		ctx := WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey).(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
