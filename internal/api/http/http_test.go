package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lkphuong/api-homepage/internal/apisrv/admin"
	"github.com/lkphuong/api-homepage/internal/apisrv/auth"
	"github.com/lkphuong/api-homepage/internal/content"
	"github.com/lkphuong/api-homepage/internal/entity"
	"github.com/lkphuong/api-homepage/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const languageVI = "7a1a6a3e-5c58-4f5a-9a38-2f6b0f0d1e01"

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newTestHandler(t *testing.T, db Pinger) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		filepath.Join(t.TempDir(), "http.db"))
	repo, err := store.New(context.Background(), store.Config{
		Driver:      store.DriverSQLite,
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	svc := content.New(content.Config{
		DefaultLanguage: languageVI,
		ItemsPerPage:    10,
		MaxFileSize:     1 << 20,
	}, repo, nil)
	_, err = svc.CreateUser(context.Background(), &entity.UserInput{
		Username: "admin",
		Password: "testPassword",
		Active:   true,
	}, "tester")
	require.NoError(t, err)

	authServer, err := auth.New(&auth.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
	}, svc)
	require.NoError(t, err)

	if db == nil {
		db = repo
	}
	s := New(&Config{Port: "0", AllowedOrigins: []string{"https://admin.example.com"}})
	return s.Handler(db, admin.New(svc), authServer)
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, nil)
	w := do(t, h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	h = newTestHandler(t, pinger{err: errors.New("connection refused")})
	w = do(t, h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGuardedRoutes(t *testing.T) {
	h := newTestHandler(t, nil)

	w := do(t, h, http.MethodPost, "/api/languages/all", `{"page": 1}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"testPassword"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.AccessToken)

	w = do(t, h, http.MethodPost, "/api/languages/all", `{"page": 1}`, login.Data.AccessToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"Tiếng Việt"`)

	w = do(t, h, http.MethodGet, "/api/permissions", "", login.Data.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t, nil)
	for origin, allowed := range map[string]bool{
		"https://admin.example.com": true,
		"http://localhost:3000":     true,
		"https://evil.example.com":  false,
	} {
		r := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
		r.Header.Set("Origin", origin)
		r.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		if allowed {
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"), origin)
		} else {
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	}
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("https://localhost:8080", nil))
	assert.True(t, isOriginAllowed("https://any.example.com", []string{"*"}))
	assert.False(t, isOriginAllowed("https://localhost.example.com", nil))
}
