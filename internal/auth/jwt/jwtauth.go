package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// Tokens is an access and refresh token pair.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Issuer signs access and refresh tokens with separate secrets.
type Issuer struct {
	access     *jwtauth.JWTAuth
	refresh    *jwtauth.JWTAuth
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		access:     jwtauth.New("HS256", []byte(accessSecret), nil),
		refresh:    jwtauth.New("HS256", []byte(refreshSecret), nil),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Access returns the JWTAuth verifying access tokens.
func (i *Issuer) Access() *jwtauth.JWTAuth {
	return i.access
}

// Issue signs a new pair for subject.
func (i *Issuer) Issue(subject string) (*Tokens, error) {
	access, err := NewTokenWithSubject(i.access, i.accessTTL, subject)
	if err != nil {
		return nil, err
	}
	refresh, err := NewTokenWithSubject(i.refresh, i.refreshTTL, subject)
	if err != nil {
		return nil, err
	}
	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyRefresh returns the subject of a valid refresh token.
func (i *Issuer) VerifyRefresh(token string) (string, error) {
	return VerifyToken(i.refresh, token)
}

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewTokenWithSubject creates a JWT with optional subject (user id) claim.
// Subject is used as the actor of audit columns.
func NewTokenWithSubject(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
