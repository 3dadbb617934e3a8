// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/urbangreen-dev/plantstore/internal/core"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	tokenKey    contextKey = "session_token"
)

// Identity is the resolved user record attached to the request context for
// the duration of a request. It carries everything downstream handlers
// need so no handler has to re-query the credential store.
type Identity struct {
	ID         string
	Firstname  string
	Lastname   string
	Age        int
	Role       string
	Email      string
	Gender     string
	ProfileURL string
	City       string
	State      string
	Country    string
	Pincode    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (i *Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// IdentityResolver verifies a raw session token and resolves it to the
// owning user. Implemented by the auth service.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*Identity, error)
}

// Authenticator guards protected routes. The session token travels in a
// cookie; a missing cookie, a failed verification, or a token that no
// longer matches the stored session all reject the request before it
// reaches a handler.
func Authenticator(
	cookieName string,
	resolver IdentityResolver,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("missing session token"),
				)
				return
			}

			identity, err := resolver.ResolveToken(r.Context(), cookie.Value)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, identityKey, identity)
			ctx = context.WithValue(ctx, tokenKey, cookie.Value)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := GetIdentity(r.Context())

		if identity == nil {
			core.JSONError(
				w,
				core.UnauthorizedError("authentication required"),
			)
			return
		}

		if !identity.IsAdmin() {
			core.JSONError(
				w,
				core.ForbiddenError("admin role required"),
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	case errors.Is(err, core.ErrNotFound):
		core.JSONError(w, core.NotFoundError("user"))
	case errors.Is(err, core.ErrUnauthorized):
		core.JSONError(w, core.UnauthorizedError("session is no longer active"))
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetIdentity(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(identityKey).(*Identity); ok {
		return identity
	}
	return nil
}

func GetToken(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey).(string); ok {
		return token
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetIdentity(ctx) != nil
}
