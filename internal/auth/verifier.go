package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/rohits-web03/passvault/internal/apperr"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// Identity is what a verified ID token says about its holder.
type Identity struct {
	Subject string
	Email   string
	Name    string
	Picture *string
}

// Verifier checks an ID token issued for this application.
type Verifier interface {
	Verify(ctx context.Context, credential string) (Identity, error)
}

type payloadValidator interface {
	Validate(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// GoogleVerifier validates Google ID tokens against Google's published
// signing keys.
type GoogleVerifier struct {
	validator payloadValidator
	clientID  string
}

func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	v, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("create id token validator: %w", err)
	}
	return &GoogleVerifier{validator: v, clientID: clientID}, nil
}

func (g *GoogleVerifier) Verify(ctx context.Context, credential string) (Identity, error) {
	if strings.TrimSpace(credential) == "" {
		return Identity{}, fmt.Errorf("%w: credential is empty", apperr.ErrInvalidCredential)
	}

	payload, err := g.validator.Validate(ctx, credential, g.clientID)
	if err != nil {
		if isTransportError(err) {
			return Identity{}, fmt.Errorf("%w: fetch signing keys: %v", apperr.ErrInternal, err)
		}
		return Identity{}, fmt.Errorf("%w: %v", apperr.ErrInvalidCredential, err)
	}
	if !googleIssuers[payload.Issuer] {
		return Identity{}, fmt.Errorf("%w: unexpected issuer %q", apperr.ErrInvalidCredential, payload.Issuer)
	}
	return identityFromPayload(payload)
}

func identityFromPayload(p *idtoken.Payload) (Identity, error) {
	if p.Subject == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", apperr.ErrInvalidCredential)
	}

	id := Identity{
		Subject: p.Subject,
		Email:   claimString(p.Claims, "email"),
		Name:    claimString(p.Claims, "name"),
	}
	if id.Email == "" || id.Name == "" {
		return Identity{}, apperr.ErrIncompleteIdentity
	}
	if pic := claimString(p.Claims, "picture"); pic != "" {
		id.Picture = &pic
	}
	return id, nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return strings.TrimSpace(s)
}

func isTransportError(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr)
}

var _ Verifier = (*GoogleVerifier)(nil)
