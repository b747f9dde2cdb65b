package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLog(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(Config{Level: int(slog.LevelDebug)}, &buf))
	t.Cleanup(func() { slog.SetDefault(prev) })

	WriteLog(context.Background(), slog.LevelError, MethodCreate, "banner", errors.New("boom"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "CREATE", line["method"])
	assert.Equal(t, "banner", line["where"])
	assert.Equal(t, "boom", line["err"])
	assert.Equal(t, "ERROR", line["level"])
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{}, &buf)

	h := RequestLogger(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/healthz", line["path"])
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
}
