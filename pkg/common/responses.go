package common

import (
	"encoding/json"
	"net/http"

	"moviedb-backend/pkg/errors"
)

// Envelope is the standard response body. Exactly which fields are set
// depends on the endpoint: review listings use Reviews, catalogue reads use
// Data, and mutations report a Message.
type Envelope struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Reviews interface{} `json:"reviews,omitempty"`
	Fields  []string    `json:"fields,omitempty"`
}

// RespondJSON writes an envelope with the given status
func RespondJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// RespondMessage writes a message-only envelope
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Envelope{Message: message})
}

// RespondReviews writes a review set under the reviews key
func RespondReviews(w http.ResponseWriter, status int, reviews interface{}) {
	RespondJSON(w, status, Envelope{Reviews: reviews})
}

// RespondData writes a payload under the data key
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, Envelope{Data: data})
}

// RespondError maps an error onto its HTTP status. Unclassified errors
// surface as a generic 500 so internal detail never leaks.
func RespondError(w http.ResponseWriter, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		RespondMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	body := Envelope{Message: appErr.Message}
	if appErr.Code == errors.CodeSchemaViolation {
		if fields, ok := appErr.Details["fields"].([]string); ok {
			body.Fields = fields
		}
	}
	RespondJSON(w, appErr.HTTPStatus, body)
}
