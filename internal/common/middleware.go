package common

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	claimsKey  contextKey = "claims"
	userKeyKey contextKey = "user_key"
)

const visitorCookie = "cs_visitor"

// ClaimsFrom returns the authenticated claims, if any.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// UserIDFrom returns the authenticated user id, or 0.
func UserIDFrom(ctx context.Context) uint64 {
	if claims, ok := ClaimsFrom(ctx); ok {
		return claims.UserID
	}
	return 0
}

// UserKeyFrom returns the interaction tracking key for the request: the user
// id for authenticated requests, otherwise the visitor cookie value.
func UserKeyFrom(ctx context.Context) string {
	if claims, ok := ClaimsFrom(ctx); ok {
		return "user:" + strconv.FormatUint(claims.UserID, 10)
	}
	if key, ok := ctx.Value(userKeyKey).(string); ok {
		return key
	}
	return ""
}

// AuthMiddleware enforces a Bearer token and injects the claims into the
// request context.
func AuthMiddleware(tm *TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, http.StatusUnauthorized, "invalid auth header")
				return
			}

			claims, err := tm.Validate(parts[1])
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware injects claims when a valid token is present but
// lets anonymous requests through, tagging them with a visitor cookie so
// interaction tracking still has a stable key.
func OptionalAuthMiddleware(tm *TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if header := r.Header.Get("Authorization"); header != "" {
				parts := strings.Fields(header)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					if claims, err := tm.Validate(parts[1]); err == nil {
						ctx = context.WithValue(ctx, claimsKey, claims)
						next.ServeHTTP(w, r.WithContext(ctx))
						return
					}
				}
			}

			key := ""
			if c, err := r.Cookie(visitorCookie); err == nil && c.Value != "" {
				key = c.Value
			} else {
				key = "visitor:" + uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     visitorCookie,
					Value:    key,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx = context.WithValue(ctx, userKeyKey, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs every request with route, status and latency, and feeds
// the Prometheus request metrics.
func RequestLogger(logger zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tmpl, err := cur.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}
			elapsed := time.Since(start)

			RequestsTotal.WithLabelValues(route, r.Method, fmt.Sprintf("%d", rec.status)).Inc()
			RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

			logger.Info().
				Str("method", r.Method).
				Str("route", route).
				Int("status", rec.status).
				Dur("elapsed", elapsed).
				Msg("request")
		})
	}
}
