package api

import (
	"log/slog"
	"net/http"

	_ "github.com/rohits-web03/passvault/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/passvault/internal/api/handlers"
	"github.com/rohits-web03/passvault/internal/api/middleware"
	"github.com/rohits-web03/passvault/internal/auth"
	"github.com/rohits-web03/passvault/internal/vault"
	"github.com/rs/cors"
)

// Dependencies are the services the routes are wired to. Exporter and
// Exchanger are optional; their routes are only mounted when set.
type Dependencies struct {
	Auth        *auth.Authenticator
	Cookies     *auth.SessionCookie
	Exchanger   handlers.CodeExchanger
	Passwords   *vault.PasswordService
	Families    *vault.FamilyService
	Exporter    *vault.Exporter
	CORS        cors.Options
	FrontendURL string
	Production  bool
}

func SetupRouter(deps Dependencies) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(deps.CORS)
	requireAuth := middleware.RequireAuth(deps.Cookies, deps.Auth)

	authHandler := &handlers.AuthHandler{
		Auth:        deps.Auth,
		Cookies:     deps.Cookies,
		Exchanger:   deps.Exchanger,
		Protection:  deps.Passwords.Protection(),
		FrontendURL: deps.FrontendURL,
		Production:  deps.Production,
	}
	passwordHandler := &handlers.PasswordHandler{
		Passwords: deps.Passwords,
		Families:  deps.Families,
		Exporter:  deps.Exporter,
	}
	familyHandler := &handlers.FamilyHandler{Families: deps.Families}

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", handlers.Health)
	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("POST /google", authHandler.GoogleSignIn)
	authMux.HandleFunc("POST /logout", authHandler.Logout)
	authMux.Handle("GET /me", requireAuth(http.HandlerFunc(authHandler.Me)))
	if deps.Exchanger != nil {
		authMux.HandleFunc("GET /google/login", authHandler.GoogleLogin)
		authMux.HandleFunc("GET /google/callback", authHandler.GoogleCallback)
	}

	mainMux.Handle("/api/auth/",
		http.StripPrefix("/api/auth", authMux),
	)

	toolsMux := http.NewServeMux()
	toolsMux.HandleFunc("POST /generate", handlers.GeneratePassword)
	toolsMux.HandleFunc("POST /strength", handlers.ClassifyStrength)

	mainMux.Handle("/api/tools/",
		http.StripPrefix("/api/tools", toolsMux),
	)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	passwordMux := http.NewServeMux()
	passwordMux.HandleFunc("GET /{$}", passwordHandler.List)
	passwordMux.HandleFunc("POST /{$}", passwordHandler.Create)
	passwordMux.HandleFunc("GET /stats", passwordHandler.Stats)
	passwordMux.HandleFunc("GET /{id}", passwordHandler.Get)
	passwordMux.HandleFunc("PATCH /{id}", passwordHandler.Update)
	passwordMux.HandleFunc("DELETE /{id}", passwordHandler.Delete)
	passwordMux.HandleFunc("POST /{id}/share", passwordHandler.Share)
	if deps.Exporter != nil {
		passwordMux.HandleFunc("POST /export", passwordHandler.Export)
	}

	familyMux := http.NewServeMux()
	familyMux.HandleFunc("POST /{$}", familyHandler.Create)
	familyMux.HandleFunc("GET /{familyId}/members", familyHandler.Members)
	familyMux.HandleFunc("POST /{familyId}/members", familyHandler.AddMember)
	familyMux.HandleFunc("GET /{familyId}/passwords", familyHandler.SharedPasswords)

	protectedMux.Handle("/passwords/",
		http.StripPrefix("/passwords", passwordMux),
	)
	protectedMux.Handle("/passwords", collectionRoot(passwordMux))
	protectedMux.Handle("/families/",
		http.StripPrefix("/families", familyMux),
	)
	protectedMux.Handle("/families", collectionRoot(familyMux))

	mainMux.Handle("/api/",
		http.StripPrefix(
			"/api",
			requireAuth(protectedMux),
		),
	)

	slog.Info("Router initialized", "export", deps.Exporter != nil, "redirect_flow", deps.Exchanger != nil)
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}

// collectionRoot serves a bare collection path such as "/passwords" from a
// sub-mux whose root pattern is "/{$}", without a 301 round trip.
func collectionRoot(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r2 := new(http.Request)
		*r2 = *r
		u := *r.URL
		u.Path = "/"
		u.RawPath = ""
		r2.URL = &u
		mux.ServeHTTP(w, r2)
	})
}
