package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohits-web03/passvault/internal/models"
)

const CookieName = "passvault_session"

// SessionCookie encodes a session id into a signed, expiring cookie value.
// The session record stays authoritative; the signature only keeps forged
// or stale values from reaching the store.
type SessionCookie struct {
	secret []byte
	secure bool
	now    func() time.Time
}

func NewSessionCookie(secret string, production bool) *SessionCookie {
	return &SessionCookie{secret: []byte(secret), secure: production, now: time.Now}
}

// Encode signs the session id and expiry as an HS256 token.
func (c *SessionCookie) Encode(s *models.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		IssuedAt:  jwt.NewNumericDate(c.now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

// Decode returns the session id carried by value.
func (c *SessionCookie) Decode(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.ID == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.ID, nil
}

// Read returns the session id of the request, if it carries a valid cookie.
func (c *SessionCookie) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	id, err := c.Decode(cookie.Value)
	if err != nil {
		return "", false
	}
	return id, true
}

// Set writes the cookie for s.
func (c *SessionCookie) Set(w http.ResponseWriter, s *models.Session) error {
	value, err := c.Encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, c.cookie(value, int(s.ExpiresAt.Sub(c.now()).Seconds())))
	return nil
}

// Clear expires the cookie in the browser.
func (c *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie("", -1))
}

func (c *SessionCookie) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if c.secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: sameSite,
	}
}
