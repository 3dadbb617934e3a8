// AngelaMos | 2026
// cors_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urbangreen-dev/plantstore/internal/config"
)

func corsConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigin:    "http://localhost:5173",
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

func serveCORS(method, origin string) *httptest.ResponseRecorder {
	handler := CORS(corsConfig())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(method, "/getplants", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowedOrigin(t *testing.T) {
	rec := serveCORS("GET", "http://localhost:5173")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173",
		rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true",
		rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSOtherOriginGetsNoHeaders(t *testing.T) {
	rec := serveCORS("GET", "https://evil.example.com")

	// The request still runs; the browser enforces the missing headers.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	rec := serveCORS("OPTIONS", "http://localhost:5173")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"),
		"PATCH")
	assert.Equal(t, "300", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORSPreflightDisallowedOrigin(t *testing.T) {
	rec := serveCORS("OPTIONS", "https://evil.example.com")

	// The preflight still terminates at the middleware, just without any
	// CORS headers.
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSSameOriginRequest(t *testing.T) {
	rec := serveCORS("GET", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	var fromCtx string
	handler := RequestID(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx = GetRequestID(r.Context())
		}),
	)

	t.Run("generates an id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, fromCtx)
		assert.Equal(t, fromCtx, rec.Header().Get(RequestIDHeader))
	})

	t.Run("honors supplied id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "proxy-id-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "proxy-id-42", fromCtx)
		assert.Equal(t, "proxy-id-42", rec.Header().Get(RequestIDHeader))
	})
}
