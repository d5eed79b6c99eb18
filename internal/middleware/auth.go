package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// IdentityResolver resolves the user bound to a request, nil when anonymous.
type IdentityResolver interface {
	Current(ctx context.Context, r *http.Request) (*model.User, error)
}

// LoadIdentity resolves the session once per request and stores the user,
// if any, in the request context. A storage failure is logged and the
// request continues as anonymous.
func LoadIdentity(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.Current(r.Context(), r)
			if err != nil {
				slog.Error("resolving session failed", "error", err, "path", r.URL.Path)
			}
			if user != nil {
				r = r.WithContext(WithUser(r.Context(), *user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth redirects anonymous requests to the login page, passing the
// originally requested path in the next parameter.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AnonymousOnly sends already signed-in users to the news listing.
func AnonymousOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); ok {
			http.Redirect(w, r, "/news", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (model.User, bool) {
	u, ok := ctx.Value(userKey).(model.User)
	return u, ok
}
