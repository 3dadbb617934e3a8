// AngelaMos | 2026
// logger_test.go

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerEmitsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestID(Logger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{}`)) //nolint:errcheck // test handler
		}),
	))

	req := httptest.NewRequest("POST", "/addplant", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "POST", line["method"])
	assert.Equal(t, "/addplant", line["path"])
	assert.Equal(t, float64(http.StatusCreated), line["status"])
	assert.Equal(t, "req-123", line["request_id"])

	// No span on the context, so no trace_id attribute.
	assert.NotContains(t, line, "trace_id")
}
