package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// Guard rejects requests without a verified access token. jwtauth.Verifier
// must run first. check may reject the subject, e.g. a deactivated user.
func Guard(check func(ctx context.Context, subject string) error, reject func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				reject(w, r, err)
				return
			}
			if token == nil || token.Subject() == "" {
				reject(w, r, jwtauth.ErrNoTokenFound)
				return
			}
			if check != nil {
				if err := check(r.Context(), token.Subject()); err != nil {
					reject(w, r, err)
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), token.Subject())))
		})
	}
}
