package response

import (
	"encoding/json"
	"errors"
	"net/http"
)

// DecodeJSON reads the request body into v. On failure it writes a 400, or a
// 413 when the body exceeded its limit, and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}
	WriteError(w, http.StatusBadRequest, "Invalid request body")
	return false
}
