package response

import (
	"encoding/json"
	"net/http"
)

// ErrorMessage is the body of a plain error response.
type ErrorMessage struct {
	Error string `json:"error"`
}

// Failure is the body of an error response on endpoints that report success.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorMessage{Error: message})
}

func WriteFailure(w http.ResponseWriter, statusCode int, failure Failure) {
	failure.Success = false
	WriteJSON(w, statusCode, failure)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, data)
}
