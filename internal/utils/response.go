package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rohits-web03/passvault/internal/apperr"
)

const maxBodyBytes = 1 << 20

type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSONResponse sends a JSON response with given status, success flag, and payload
func JSONResponse(w http.ResponseWriter, status int, payload Payload) {
	WriteJSON(w, status, payload)
}

// WriteJSON encodes v as the whole response body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse maps err onto its status and client-facing message. Server
// errors are logged with their full chain and answered generically.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	JSONResponse(w, status, Payload{
		Success: false,
		Message: apperr.Message(err),
	})
}

// DecodeJSON reads a single JSON object into dst, rejecting unknown fields
// and trailing data. An empty body yields io.EOF.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		return fmt.Errorf("%w: invalid request body: %v", apperr.ErrValidation, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: invalid request body: trailing data", apperr.ErrValidation)
	}
	return nil
}

// DecodeAndValidate is DecodeJSON followed by Validate. An empty body is a
// validation failure.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := DecodeJSON(w, r, dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", apperr.ErrValidation)
		}
		return err
	}
	return Validate(dst)
}
