package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/utils"
	"github.com/rohits-web03/passvault/internal/vault"
)

type FamilyHandler struct {
	Families *vault.FamilyService
}

type CreateFamilyResponse struct {
	FamilyID uuid.UUID `json:"familyId"`
}

// Create godoc
// @Summary Create a family
// @Description The caller becomes its owner.
// @Tags Families
// @Produce json
// @Success 201 {object} CreateFamilyResponse
// @Failure 401 {object} utils.Payload
// @Router /api/families [post]
func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	familyID, err := h.Families.CreateFamily(r.Context(), p.UserID)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, CreateFamilyResponse{FamilyID: familyID})
}

// Members godoc
// @Summary List family members
// @Tags Families
// @Produce json
// @Param familyId path string true "Family id"
// @Success 200 {array} models.FamilyMember
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/families/{familyId}/members [get]
func (h *FamilyHandler) Members(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	familyID, err := utils.ParseID(r.PathValue("familyId"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	members, err := h.Families.Members(r.Context(), familyID, p.UserID)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, members)
}

// AddMember godoc
// @Summary Add a member by email
// @Description Only the family owner may add members.
// @Tags Families
// @Accept json
// @Produce json
// @Param familyId path string true "Family id"
// @Param body body vault.AddMemberInput true "Member email"
// @Success 201 {object} models.FamilyMember
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/families/{familyId}/members [post]
func (h *FamilyHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	familyID, err := utils.ParseID(r.PathValue("familyId"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	var input vault.AddMemberInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	member, err := h.Families.AddMember(r.Context(), familyID, p.UserID, input)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, member)
}

// SharedPasswords godoc
// @Summary Entries shared with a family
// @Tags Families
// @Produce json
// @Param familyId path string true "Family id"
// @Success 200 {array} models.PasswordEntry
// @Failure 401 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/families/{familyId}/passwords [get]
func (h *FamilyHandler) SharedPasswords(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	familyID, err := utils.ParseID(r.PathValue("familyId"))
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	entries, err := h.Families.SharedPasswords(r.Context(), familyID, p.UserID)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}
