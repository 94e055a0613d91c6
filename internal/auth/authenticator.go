// Package auth verifies Google identities and manages the server-side
// sessions that carry them between requests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/rohits-web03/passvault/internal/utils"
)

const sessionIDBytes = 32

type Authenticator struct {
	verifier Verifier
	users    repositories.UserRepository
	sessions repositories.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthenticator(v Verifier, users repositories.UserRepository, sessions repositories.SessionStore, ttl time.Duration) *Authenticator {
	return &Authenticator{
		verifier: v,
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// SignIn verifies credential, resolves or creates the user it names and
// opens a session for them. Nothing is persisted when verification fails.
func (a *Authenticator) SignIn(ctx context.Context, credential string) (*models.Session, error) {
	identity, err := a.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	user, err := a.users.FindOrCreateByGoogleID(ctx, &models.User{
		GoogleID: identity.Subject,
		Email:    identity.Email,
		Name:     identity.Name,
		Picture:  identity.Picture,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: resolve user: %v", apperr.ErrInternal, err)
	}

	id, err := utils.GenerateSecureToken(sessionIDBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: generate session id: %v", apperr.ErrInternal, err)
	}

	session := &models.Session{
		ID:        id,
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Picture:   user.Picture,
		ExpiresAt: a.now().Add(a.ttl).UTC(),
	}
	if err := a.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInternal, err)
	}

	slog.InfoContext(ctx, "user signed in", "user_id", user.ID)
	return session, nil
}

// Resolve loads the live session with the given id.
func (a *Authenticator) Resolve(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	session, err := a.sessions.Get(ctx, sessionID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrInternal, err)
	}
	if session.Expired(a.now()) {
		return nil, apperr.ErrUnauthenticated
	}
	return session, nil
}

// SignOut destroys the session. An empty id is a no-op.
func (a *Authenticator) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInternal, err)
	}
	return nil
}
