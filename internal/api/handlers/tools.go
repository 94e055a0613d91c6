package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/utils"
	"github.com/rohits-web03/passvault/internal/vault"
)

type GenerateInput struct {
	Length *int `json:"length" validate:"omitnil,min=8,max=128"`
}

type GenerateResponse struct {
	Password string          `json:"password"`
	Strength models.Strength `json:"strength"`
}

type StrengthInput struct {
	Password string `json:"password" validate:"required"`
}

type StrengthResponse struct {
	Strength models.Strength `json:"strength"`
}

// GeneratePassword godoc
// @Summary Generate a random password
// @Tags Tools
// @Accept json
// @Produce json
// @Param body body GenerateInput false "Desired length, 8 to 128 (default 16)"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} utils.Payload
// @Router /api/tools/generate [post]
func GeneratePassword(w http.ResponseWriter, r *http.Request) {
	var input GenerateInput
	if err := utils.DecodeJSON(w, r, &input); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorResponse(w, r, err)
		return
	}
	if err := utils.Validate(input); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}

	length := vault.DefaultLength
	if input.Length != nil {
		length = *input.Length
	}
	password, err := vault.Generate(length)
	if err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, GenerateResponse{
		Password: password,
		Strength: vault.Classify(password),
	})
}

// ClassifyStrength godoc
// @Summary Classify password strength
// @Tags Tools
// @Accept json
// @Produce json
// @Param body body StrengthInput true "Candidate password"
// @Success 200 {object} StrengthResponse
// @Failure 400 {object} utils.Payload
// @Router /api/tools/strength [post]
func ClassifyStrength(w http.ResponseWriter, r *http.Request) {
	var input StrengthInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		utils.ErrorResponse(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, StrengthResponse{Strength: vault.Classify(input.Password)})
}
