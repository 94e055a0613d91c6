package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/auth"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	sessions map[string]*models.Session
	err      error
}

func (s stubResolver) Resolve(_ context.Context, id string) (*models.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return nil, apperr.ErrUnauthenticated
}

func whoami(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Write([]byte(p.User.Email))
}

func TestRequireAuth(t *testing.T) {
	cookies := auth.NewSessionCookie("secret", false)
	live := &models.Session{ID: "live", UserID: uuid.New(), Email: "alice@example.com", ExpiresAt: time.Now().Add(time.Hour)}
	resolver := stubResolver{sessions: map[string]*models.Session{"live": live}}

	signed := func(id string) *http.Cookie {
		rec := httptest.NewRecorder()
		require.NoError(t, cookies.Set(rec, &models.Session{ID: id, ExpiresAt: time.Now().Add(time.Hour)}))
		return rec.Result().Cookies()[0]
	}

	tests := []struct {
		name     string
		cookie   *http.Cookie
		resolver SessionResolver
		want     int
		body     string
	}{
		{"no cookie", nil, resolver, http.StatusUnauthorized, "Authentication required"},
		{"garbage cookie", &http.Cookie{Name: auth.CookieName, Value: "xyz"}, resolver, http.StatusUnauthorized, "Authentication required"},
		{"unknown session", signed("gone"), resolver, http.StatusUnauthorized, "Authentication required"},
		{"store down", signed("live"), stubResolver{err: apperr.ErrInternal}, http.StatusInternalServerError, "Internal server error"},
		{"live session", signed("live"), resolver, http.StatusOK, "alice@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RequireAuth(cookies, tt.resolver)(http.HandlerFunc(whoami))
			req := httptest.NewRequest(http.MethodGet, "/passwords", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestRequireAuth_PreflightPassesThrough(t *testing.T) {
	h := RequireAuth(auth.NewSessionCookie("secret", false), stubResolver{err: errors.New("unused")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/passwords", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/passwords?q=secret", nil))

	out := buf.String()
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/api/passwords")
	assert.Contains(t, out, "status=201")
	assert.NotContains(t, out, "q=secret")
}
