package auth

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type stubValidator struct {
	payload  *idtoken.Payload
	err      error
	audience string
}

func (s *stubValidator) Validate(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
	s.audience = audience
	return s.payload, s.err
}

func googlePayload(claims map[string]any) *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:  "https://accounts.google.com",
		Subject: "1234567890",
		Claims:  claims,
	}
}

func TestGoogleVerifier_Verify(t *testing.T) {
	full := map[string]any{"email": "alice@example.com", "name": "Alice", "picture": "https://example.com/a.png"}

	tests := []struct {
		name       string
		credential string
		validator  *stubValidator
		wantErr    error
	}{
		{"empty credential", "  ", &stubValidator{payload: googlePayload(full)}, apperr.ErrInvalidCredential},
		{"bad signature", "tok", &stubValidator{err: errors.New("idtoken: invalid token signature")}, apperr.ErrInvalidCredential},
		{"key endpoint unreachable", "tok", &stubValidator{err: &url.Error{Op: "Get", URL: "https://www.googleapis.com/oauth2/v3/certs", Err: errors.New("dial tcp: timeout")}}, apperr.ErrInternal},
		{"foreign issuer", "tok", &stubValidator{payload: &idtoken.Payload{Issuer: "https://evil.example", Subject: "1", Claims: full}}, apperr.ErrInvalidCredential},
		{"missing email", "tok", &stubValidator{payload: googlePayload(map[string]any{"name": "Alice"})}, apperr.ErrIncompleteIdentity},
		{"missing name", "tok", &stubValidator{payload: googlePayload(map[string]any{"email": "alice@example.com"})}, apperr.ErrIncompleteIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &GoogleVerifier{validator: tt.validator, clientID: "client-123"}
			_, err := v.Verify(context.Background(), tt.credential)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGoogleVerifier_Verify_Success(t *testing.T) {
	stub := &stubValidator{payload: googlePayload(map[string]any{
		"email":   "alice@example.com",
		"name":    "Alice",
		"picture": "https://example.com/a.png",
	})}
	stub.payload.Issuer = "accounts.google.com"
	v := &GoogleVerifier{validator: stub, clientID: "client-123"}

	id, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, "client-123", stub.audience)
	assert.Equal(t, "1234567890", id.Subject)
	assert.Equal(t, "alice@example.com", id.Email)
	assert.Equal(t, "Alice", id.Name)
	require.NotNil(t, id.Picture)
	assert.Equal(t, "https://example.com/a.png", *id.Picture)
}

func TestIdentityFromPayload_NoPicture(t *testing.T) {
	id, err := identityFromPayload(googlePayload(map[string]any{"email": "a@b.com", "name": "A"}))
	require.NoError(t, err)
	assert.Nil(t, id.Picture)
}
