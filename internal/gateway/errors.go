package gateway

import (
	"encoding/json"
	"net/http"
)

// Messages returned in error bodies. Clients surface these verbatim, so
// they are pinned here rather than built inline.
const (
	msgEmptyPrompt   = "Prompt must not be empty."
	msgInvalidBody   = "Request body must be a JSON object."
	msgBodyTooLarge  = "Request body exceeds the size limit."
	msgFamilyMissing = "The family query parameter is required."
	msgRateLimited   = "Too many requests. Slow down and try again."
	msgInternal      = "Internal server error."
)

// errorResponse is the JSON error body. Clients prefer details over error
// when both are present; this server always fills details.
type errorResponse struct {
	Details string `json:"details"`
}

// writeJSON writes a JSON response with the given status code and body.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes a JSON error response with the message in details.
func writeError(w http.ResponseWriter, status int, details string) {
	writeJSON(w, status, errorResponse{Details: details})
}
