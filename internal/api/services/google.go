package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// NewGoogleOAuthConfig builds the authorization-code flow client. The ID
// token in the token response is what sign-in verifies.
func NewGoogleOAuthConfig(cfg config.GoogleConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleCodeExchanger trades an authorization code for an ID token.
type GoogleCodeExchanger struct {
	Config *oauth2.Config
}

func (g GoogleCodeExchanger) AuthCodeURL(state string) string {
	return g.Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (g GoogleCodeExchanger) Exchange(ctx context.Context, code string) (string, error) {
	token, err := g.Config.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", fmt.Errorf("%w: code exchange rejected: %v", apperr.ErrInvalidCredential, err)
		}
		return "", fmt.Errorf("%w: code exchange: %v", apperr.ErrInternal, err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", fmt.Errorf("%w: token response carries no id_token", apperr.ErrInvalidCredential)
	}
	return idToken, nil
}
