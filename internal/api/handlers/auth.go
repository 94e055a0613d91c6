package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/auth"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/utils"
	"github.com/rohits-web03/passvault/internal/vault"
)

const stateCookieName = "oauth_state"

// CodeExchanger runs the authorization-code half of the redirect flow.
type CodeExchanger interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (idToken string, err error)
}

type AuthHandler struct {
	Auth        *auth.Authenticator
	Cookies     *auth.SessionCookie
	Exchanger   CodeExchanger
	Protection  vault.Protection
	FrontendURL string
	Production  bool
}

type SignInInput struct {
	Credential string `json:"credential" validate:"required"`
}

type SecretProtection struct {
	Level  vault.Protection `json:"level"`
	Notice string           `json:"notice"`
}

type SessionResponse struct {
	User             models.SessionUser `json:"user"`
	SecretProtection SecretProtection   `json:"secretProtection"`
}

func (h *AuthHandler) sessionResponse(u models.SessionUser) SessionResponse {
	return SessionResponse{
		User: u,
		SecretProtection: SecretProtection{
			Level:  h.Protection,
			Notice: h.Protection.Notice(),
		},
	}
}

// GoogleSignIn godoc
// @Summary Sign in with a Google ID token
// @Description Verifies the credential, creates the user on first sign-in and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignInInput true "Google ID token"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} utils.Payload "Missing, invalid or incomplete credential"
// @Failure 500 {object} utils.Payload "Provider or store unavailable"
// @Router /api/auth/google [post]
func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var input SignInInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	session, err := h.Auth.SignIn(r.Context(), input.Credential)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	if err := h.Cookies.Set(w, session); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, h.sessionResponse(session.Snapshot()))
}

// Me godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} utils.Payload "Authentication required"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, r, apperr.ErrUnauthenticated)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.sessionResponse(p.User))
}

// Logout godoc
// @Summary Sign out
// @Description Destroys the server-side session and clears the cookie. Succeeds without a session.
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 500 {object} utils.Payload "Session could not be destroyed"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := h.Cookies.Read(r)
	if err := h.Auth.SignOut(r.Context(), sessionID); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	h.Cookies.Clear(w)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged out successfully",
	})
}

// GoogleLogin godoc
// @Summary Start the Google redirect flow
// @Tags Auth
// @Param next query string false "Relative path to return to"
// @Success 307
// @Router /api/auth/google/login [get]
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := newState(r.URL.Query().Get("next"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	http.SetCookie(w, h.stateCookie(state, 600))
	http.Redirect(w, r, h.Exchanger.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback godoc
// @Summary Finish the Google redirect flow
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307
// @Failure 400 {object} utils.Payload "Invalid state or code"
// @Failure 500 {object} utils.Payload
// @Router /api/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.FormValue("state")
	cookie, err := r.Cookie(stateCookieName)
	if err != nil || state == "" || cookie.Value != state {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid OAuth state",
		})
		return
	}
	http.SetCookie(w, h.stateCookie("", -1))

	stateData, err := parseState(state)
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid OAuth state",
		})
		return
	}

	code := r.FormValue("code")
	if code == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing authorization code",
		})
		return
	}

	idToken, err := h.Exchanger.Exchange(r.Context(), code)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	session, err := h.Auth.SignIn(r.Context(), idToken)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	if err := h.Cookies.Set(w, session); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "redirect sign-in complete", "user_id", session.UserID)
	http.Redirect(w, r, strings.TrimRight(h.FrontendURL, "/")+stateData.Next, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) stateCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		Path:     "/api/auth/google",
		MaxAge:   maxAge,
		Secure:   h.Production,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
