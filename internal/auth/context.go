package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/models"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID    uuid.UUID
	SessionID string
	User      models.SessionUser
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored by the auth gate. The boolean is
// false for unauthenticated requests and for a principal without a user id.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, false
	}
	return p, true
}

// PrincipalFromSession builds the principal for a resolved session.
func PrincipalFromSession(s *models.Session) Principal {
	return Principal{UserID: s.UserID, SessionID: s.ID, User: s.Snapshot()}
}
