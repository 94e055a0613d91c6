package middleware

import (
	"context"
	"net/http"

	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/auth"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/utils"
)

// SessionResolver loads the live session a cookie points at.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*models.Session, error)
}

// RequireAuth is the only gate in front of protected routes. It resolves
// the session cookie and stores the principal in the request context.
func RequireAuth(cookies *auth.SessionCookie, sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			sessionID, ok := cookies.Read(r)
			if !ok {
				utils.ErrorResponse(w, r, apperr.ErrUnauthenticated)
				return
			}

			session, err := sessions.Resolve(r.Context(), sessionID)
			if err != nil {
				utils.ErrorResponse(w, r, err)
				return
			}

			ctx := auth.WithPrincipal(r.Context(), auth.PrincipalFromSession(session))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
