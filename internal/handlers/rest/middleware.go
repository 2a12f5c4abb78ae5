package rest

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// UserHeader carries the caller's account id
const UserHeader = "X-Companion-User"

type ownerKey struct{}

// OwnerFromContext returns the caller id stored by RequireUser
func OwnerFromContext(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey{}).(string)
	return owner
}

// RecoverMiddleware turns a handler panic into a 500 instead of a dropped connection
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("PANIC in %s %s: %v\nStack trace:\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				writeError(w, dnderr.New(dnderr.CodeInternal, "an unexpected error occurred"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// RequireUser rejects requests without a caller identity
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := strings.TrimSpace(r.Header.Get(UserHeader))
		if owner == "" {
			writeError(w, dnderr.Unauthenticated("Unauthorized"))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey{}, owner)))
	})
}
