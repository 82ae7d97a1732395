package web

import (
	"encoding/json"
	"net/http"

	"github.com/snazzy/storefront/pkg/apperror"
)

// Response is the uniform JSON envelope for every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondJSON writes a JSON response with the given status code
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondError writes a JSON error envelope
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{Success: false, Error: message})
}

// RespondAppError maps a taxonomy error to its HTTP status and writes it
func RespondAppError(w http.ResponseWriter, err error) {
	RespondJSON(w, apperror.HTTPStatus(err), Response{Success: false, Error: err.Error()})
}
