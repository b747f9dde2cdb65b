package auth

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/lkphuong/api-homepage/internal/auth/jwt"
	"github.com/lkphuong/api-homepage/internal/dto"
	"github.com/lkphuong/api-homepage/internal/entity"
	gerr "github.com/lkphuong/api-homepage/internal/errors"
	"github.com/lkphuong/api-homepage/internal/form"
	"github.com/lkphuong/api-homepage/internal/middleware"
	"github.com/lkphuong/api-homepage/internal/ratelimit"
	"github.com/lkphuong/api-homepage/log"
)

const (
	msgUnauthorized    = "Bạn chưa đăng nhập hoặc phiên đăng nhập đã hết hạn."
	msgTooManyAttempts = "Bạn đã đăng nhập sai quá nhiều lần, vui lòng thử lại sau."
)

// Users authenticates credentials and token subjects.
type Users interface {
	Authenticate(ctx context.Context, username, password string) (*entity.UserFull, error)
	ActiveUser(ctx context.Context, id string) (*entity.UserFull, error)
}

// Config contains the configuration for the auth server.
type Config struct {
	AccessSecret     string        `mapstructure:"access_secret"`
	RefreshSecret    string        `mapstructure:"refresh_secret"`
	AccessTTL        time.Duration `mapstructure:"access_ttl"`
	RefreshTTL       time.Duration `mapstructure:"refresh_ttl"`
	LoginWindow      time.Duration `mapstructure:"login_window"`
	LoginPerIP       int           `mapstructure:"login_per_ip"`
	LoginPerUsername int           `mapstructure:"login_per_username"`
}

// Server implements login, token renewal and the bearer guard.
type Server struct {
	users   Users
	issuer  *jwt.Issuer
	limiter *ratelimit.LoginLimiter
}

// New creates a new auth server.
func New(c *Config, users Users) (*Server, error) {
	if c.AccessSecret == "" || c.RefreshSecret == "" {
		return nil, fmt.Errorf("access and refresh secrets are required")
	}
	if c.AccessSecret == c.RefreshSecret {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}
	if c.AccessTTL <= 0 {
		c.AccessTTL = 24 * time.Hour
	}
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = 30 * 24 * time.Hour
	}
	if c.LoginWindow <= 0 {
		c.LoginWindow = 15 * time.Minute
	}
	if c.LoginPerIP <= 0 {
		c.LoginPerIP = 20
	}
	if c.LoginPerUsername <= 0 {
		c.LoginPerUsername = 5
	}
	return &Server{
		users:   users,
		issuer:  jwt.NewIssuer(c.AccessSecret, c.RefreshSecret, c.AccessTTL, c.RefreshTTL),
		limiter: ratelimit.NewLoginLimiter(c.LoginWindow, c.LoginPerIP, c.LoginPerUsername),
	}, nil
}

// Routes returns the public auth routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Post("/login", s.Login)
	r.Post("/renew", s.Renew)
	return r
}

// Login issues a token pair for valid credentials.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := &form.LoginRequest{}
	if !dto.Bind(w, r, req) {
		return
	}

	ip := middleware.GetClientIP(ctx)
	if err := s.limiter.CheckLogin(ip, req.Username); err != nil {
		wait := s.limiter.RetryAfter(ip, req.Username)
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		dto.WriteError(w, r, gerr.TooManyRequests(msgTooManyAttempts))
		return
	}

	u, err := s.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	s.limiter.Succeeded(req.Username)
	s.issue(w, r, u)
}

// Renew exchanges a valid refresh token for a new pair.
func (s *Server) Renew(w http.ResponseWriter, r *http.Request) {
	req := &form.RenewRequest{}
	if !dto.Bind(w, r, req) {
		return
	}

	subject, err := s.issuer.VerifyRefresh(req.RefreshToken)
	if err != nil || subject == "" {
		dto.WriteError(w, r, gerr.Unauthenticated(msgUnauthorized))
		return
	}
	u, err := s.users.ActiveUser(r.Context(), subject)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	s.issue(w, r, u)
}

func (s *Server) issue(w http.ResponseWriter, r *http.Request, u *entity.UserFull) {
	tokens, err := s.issuer.Issue(u.Id)
	if err != nil {
		log.WriteLog(r.Context(), slog.LevelError, log.MethodLogin, "auth", err)
		dto.WriteError(w, r, gerr.Internal())
		return
	}
	dto.Write(w, r, dto.OK(dto.ConvertLogin(tokens.AccessToken, tokens.RefreshToken, u)))
}

// WithAuth verifies the bearer access token and rejects tokens of users that
// were deleted or deactivated. The user id becomes the request actor.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	guard := middleware.Guard(s.checkSubject, s.reject)
	return jwtauth.Verifier(s.issuer.Access())(guard(next))
}

func (s *Server) checkSubject(ctx context.Context, subject string) error {
	_, err := s.users.ActiveUser(ctx, subject)
	return err
}

func (s *Server) reject(w http.ResponseWriter, r *http.Request, err error) {
	if e, ok := gerr.As(err); ok && e.Kind != gerr.KindUnauthenticated {
		dto.WriteError(w, r, err)
		return
	}
	if !errors.Is(err, jwtauth.ErrNoTokenFound) {
		slog.Default().InfoContext(r.Context(), "rejected token",
			slog.String("err", err.Error()),
		)
	}
	dto.WriteError(w, r, gerr.Unauthenticated(msgUnauthorized))
}
