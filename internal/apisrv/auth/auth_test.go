package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userId   = "9c5b94b1-35ad-49bb-b118-8e8fc24abf80"
	username = "admin"
	password = "testPassword"
)

type fakeUsers struct {
	active bool
}

func (f *fakeUsers) user() *entity.UserFull {
	return &entity.UserFull{User: entity.User{Id: userId, Username: username, Audit: entity.Audit{Active: f.active}}}
}

func (f *fakeUsers) Authenticate(ctx context.Context, u, p string) (*entity.UserFull, error) {
	if u != username || p != password || !f.active {
		return nil, gerr.Unauthenticated("Tên đăng nhập hoặc mật khẩu không đúng.")
	}
	return f.user(), nil
}

func (f *fakeUsers) ActiveUser(ctx context.Context, id string) (*entity.UserFull, error) {
	if id != userId || !f.active {
		return nil, gerr.Unauthenticated("Tên đăng nhập hoặc mật khẩu không đúng.")
	}
	return f.user(), nil
}

func newTestServer(t *testing.T, users Users) *Server {
	t.Helper()
	s, err := New(&Config{
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		AccessTTL:        time.Hour,
		RefreshTTL:       24 * time.Hour,
		LoginWindow:      time.Minute,
		LoginPerIP:       100,
		LoginPerUsername: 3,
	}, users)
	require.NoError(t, err)
	return s
}

type loginBody struct {
	Data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			Id string `json:"id"`
		} `json:"user"`
	} `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func post(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, loginBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var lb loginBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lb), rec.Body.String())
	return rec, lb
}

func TestNewRejectsSecrets(t *testing.T) {
	_, err := New(&Config{AccessSecret: "same", RefreshSecret: "same"}, &fakeUsers{})
	assert.Error(t, err)
	_, err = New(&Config{AccessSecret: "a"}, &fakeUsers{})
	assert.Error(t, err)
}

func TestLoginAndGuard(t *testing.T) {
	users := &fakeUsers{active: true}
	s := newTestServer(t, users)
	routes := s.Routes()

	rec, lb := post(t, routes, "/login", `{"username":"admin","password":"testPassword"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, userId, lb.Data.User.Id)
	require.NotEmpty(t, lb.Data.AccessToken)
	require.NotEmpty(t, lb.Data.RefreshToken)

	var actor string
	protected := s.WithAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = middleware.GetActor(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	call := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "http://testing", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call(lb.Data.AccessToken))
	assert.Equal(t, userId, actor)

	assert.Equal(t, http.StatusUnauthorized, call(""))
	assert.Equal(t, http.StatusUnauthorized, call("bad token"))
	// A refresh token is signed with another secret.
	assert.Equal(t, http.StatusUnauthorized, call(lb.Data.RefreshToken))

	// Deactivated users lose access with their still valid token.
	users.active = false
	assert.Equal(t, http.StatusUnauthorized, call(lb.Data.AccessToken))
}

func TestRenew(t *testing.T) {
	s := newTestServer(t, &fakeUsers{active: true})
	routes := s.Routes()

	_, login := post(t, routes, "/login", `{"username":"admin","password":"testPassword"}`)

	rec, renewed := post(t, routes, "/renew", `{"refresh_token":"`+login.Data.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, renewed.Data.AccessToken)

	rec, body := post(t, routes, "/renew", `{"refresh_token":"`+login.Data.AccessToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, int(gerr.ExitUnauthorized), body.Error.Code)

	rec, body = post(t, routes, "/renew", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bạn vui lòng nhập [refresh_token].", body.Error.Message)
}

func TestLoginThrottled(t *testing.T) {
	s := newTestServer(t, &fakeUsers{active: true})
	routes := s.Routes()

	for i := 0; i < 3; i++ {
		rec, _ := post(t, routes, "/login", `{"username":"admin","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec, body := post(t, routes, "/login", `{"username":"ADMIN","password":"testPassword"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	require.NotNil(t, body.Error)
	assert.Equal(t, msgTooManyAttempts, body.Error.Message)
}
