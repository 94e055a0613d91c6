package handlers

import (
	"net/http"

	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/auth"
	"github.com/rohits-web03/passvault/internal/repositories"
	"github.com/rohits-web03/passvault/internal/utils"
	"github.com/rohits-web03/passvault/internal/vault"
)

type PasswordHandler struct {
	Passwords *vault.PasswordService
	Families  *vault.FamilyService
	Exporter  *vault.Exporter
}

// principal returns the caller or writes 401. Handlers behind RequireAuth
// always have one; the check keeps a mis-wired route from running blind.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, r, apperr.ErrUnauthenticated)
	}
	return p, ok
}

// List godoc
// @Summary List password entries
// @Description Most recently used first, then most recently created.
// @Tags Passwords
// @Produce json
// @Param q query string false "Case-insensitive search over title and username"
// @Param category query string false "all, favorites, shared or weak"
// @Success 200 {array} models.PasswordEntry
// @Failure 400 {object} utils.Payload "Unknown category"
// @Failure 401 {object} utils.Payload
// @Router /api/passwords [get]
func (h *PasswordHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	filter := repositories.ListFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	entries, err := h.Passwords.List(r.Context(), p.UserID, filter)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}

// Stats godoc
// @Summary Entry counts per dashboard category
// @Tags Passwords
// @Produce json
// @Success 200 {object} models.PasswordStats
// @Failure 401 {object} utils.Payload
// @Router /api/passwords/stats [get]
func (h *PasswordHandler) Stats(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	stats, err := h.Passwords.Stats(r.Context(), p.UserID)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stats)
}

// Get godoc
// @Summary Get a password entry
// @Tags Passwords
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} models.PasswordEntry
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/passwords/{id} [get]
func (h *PasswordHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	entry, err := h.Passwords.Get(r.Context(), id, p.UserID)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entry)
}

// Create godoc
// @Summary Create a password entry
// @Tags Passwords
// @Accept json
// @Produce json
// @Param body body vault.CreatePasswordInput true "Entry fields"
// @Success 201 {object} models.PasswordEntry
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/passwords [post]
func (h *PasswordHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var input vault.CreatePasswordInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	entry, err := h.Passwords.Create(r.Context(), p.UserID, input)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, entry)
}

// Update godoc
// @Summary Partially update a password entry
// @Tags Passwords
// @Accept json
// @Produce json
// @Param id path string true "Entry id"
// @Param body body vault.UpdatePasswordInput true "Fields to change"
// @Success 200 {object} models.PasswordEntry
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/passwords/{id} [patch]
func (h *PasswordHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	var input vault.UpdatePasswordInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	entry, err := h.Passwords.Update(r.Context(), id, p.UserID, input)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a password entry
// @Tags Passwords
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/passwords/{id} [delete]
func (h *PasswordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	if err := h.Passwords.Delete(r.Context(), id, p.UserID); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Password deleted successfully",
	})
}

// Share godoc
// @Summary Share an entry with a family
// @Tags Passwords
// @Accept json
// @Produce json
// @Param id path string true "Entry id"
// @Param body body vault.ShareInput true "Target family"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/passwords/{id}/share [post]
func (h *PasswordHandler) Share(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	var input vault.ShareInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	if err := h.Families.Share(r.Context(), id, p.UserID, input); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Password shared successfully",
	})
}

// Export godoc
// @Summary Export the vault
// @Description Uploads the caller's entries as JSON and returns a download link valid for 15 minutes.
// @Tags Passwords
// @Produce json
// @Success 200 {object} vault.ExportResult
// @Failure 401 {object} utils.Payload
// @Failure 500 {object} utils.Payload
// @Router /api/passwords/export [post]
func (h *PasswordHandler) Export(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	res, err := h.Exporter.Export(r.Context(), p.UserID)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}
