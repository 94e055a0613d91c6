package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// oauthState travels through Google inside the state parameter. Only the
// nonce is secret; the payload is readable by anyone holding the URL.
type oauthState struct {
	Nonce string `json:"n"`
	Next  string `json:"next,omitempty"`
}

// newState returns "<nonce>.<payload>" for a redirect that should land on
// next once sign-in completes. Unsafe paths are replaced by "/".
func newState(next string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate state nonce: %w", err)
	}
	s := oauthState{
		Nonce: base64.RawURLEncoding.EncodeToString(nonce),
		Next:  safeNext(next),
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}
	return s.Nonce + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// parseState reverses newState. The payload nonce must match the prefix, and
// the returned path has been through safeNext again since the state came
// back from the browser.
func parseState(state string) (oauthState, error) {
	nonce, payload, ok := strings.Cut(state, ".")
	if !ok || nonce == "" {
		return oauthState{}, errors.New("invalid state format")
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return oauthState{}, fmt.Errorf("decode state payload: %w", err)
	}
	var s oauthState
	if err := json.Unmarshal(raw, &s); err != nil {
		return oauthState{}, fmt.Errorf("unmarshal state: %w", err)
	}
	if s.Nonce != nonce {
		return oauthState{}, errors.New("state nonce mismatch")
	}

	s.Next = safeNext(s.Next)
	return s, nil
}

// safeNext keeps only same-origin relative paths so the callback cannot be
// turned into an open redirect.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	return next
}
