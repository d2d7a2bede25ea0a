package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/clipwave/commission-service/internal/domain"
)

type contextKey struct {
	name string
}

var callerContextKey = &contextKey{"Caller"}

// AdminAuth gates admin-only routes on a bearer token issued out of band.
// The resolved caller identity is stored in the request context and passed
// explicitly to usecases; nothing reads ambient session state.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Unauthorized: missing bearer token", http.StatusUnauthorized)
				return
			}
			presented := strings.TrimPrefix(header, "Bearer ")
			if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				http.Error(w, "Forbidden: invalid token", http.StatusForbidden)
				return
			}

			caller := domain.Caller{ID: "admin", Roles: []string{domain.RoleAdmin}}
			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerContextKey, caller)
}

func CallerFromContext(ctx context.Context) (domain.Caller, bool) {
	caller, ok := ctx.Value(callerContextKey).(domain.Caller)
	return caller, ok
}
