// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbangreen-dev/plantstore/internal/core"
)

type stubResolver struct {
	identity *Identity
	err      error
}

func (s *stubResolver) ResolveToken(
	_ context.Context,
	_ string,
) (*Identity, error) {
	return s.identity, s.err
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	return env.Error.Code
}

func serveWithAuth(
	resolver IdentityResolver,
	cookie *http.Cookie,
) (*httptest.ResponseRecorder, *Identity) {
	var captured *Identity
	handler := Authenticator("token", resolver)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetIdentity(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest("GET", "/profile", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func TestAuthenticatorMissingCookie(t *testing.T) {
	rec, _ := serveWithAuth(&stubResolver{}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestAuthenticatorEmptyCookie(t *testing.T) {
	rec, _ := serveWithAuth(&stubResolver{},
		&http.Cookie{Name: "token", Value: ""})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorResolverErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"expired token",
			fmt.Errorf("verify: %w", core.ErrTokenExpired), "TOKEN_EXPIRED"},
		{"invalid token",
			fmt.Errorf("verify: %w", core.ErrTokenInvalid), "TOKEN_INVALID"},
		{"user gone",
			fmt.Errorf("get user: %w", core.ErrNotFound), "NOT_FOUND"},
		{"session revoked",
			fmt.Errorf("resolve: %w", core.ErrUnauthorized), "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := serveWithAuth(&stubResolver{err: tt.err},
				&http.Cookie{Name: "token", Value: "some-token"})

			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestAuthenticatorAttachesIdentity(t *testing.T) {
	identity := &Identity{ID: "u1", Firstname: "Asha", Role: "user"}

	rec, captured := serveWithAuth(&stubResolver{identity: identity},
		&http.Cookie{Name: "token", Value: "valid-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "u1", captured.ID)
	assert.Equal(t, "Asha", captured.Firstname)
}

func TestAuthenticatorAttachesToken(t *testing.T) {
	identity := &Identity{ID: "u1"}

	var token string
	handler := Authenticator("token", &stubResolver{identity: identity})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token = GetToken(r.Context())
			assert.True(t, IsAuthenticated(r.Context()))
		}),
	)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "raw-token-value"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "raw-token-value", token)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(identity *Identity) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/admin/stats", nil)
		if identity != nil {
			ctx := context.WithValue(req.Context(), identityKey, identity)
			req = req.WithContext(ctx)
		}

		rec := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rec, req)
		return rec
	}

	t.Run("no identity", func(t *testing.T) {
		rec := serve(nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin", func(t *testing.T) {
		rec := serve(&Identity{ID: "u1", Role: "user"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})

	t.Run("admin", func(t *testing.T) {
		rec := serve(&Identity{ID: "a1", Role: "admin"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetIdentityOutsideRequest(t *testing.T) {
	assert.Nil(t, GetIdentity(context.Background()))
	assert.Empty(t, GetToken(context.Background()))
	assert.False(t, IsAuthenticated(context.Background()))
}
