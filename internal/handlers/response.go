package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/middlewares"
	"github.com/sbilibin2017/gw-journal/internal/models"
)

// MessageResponse carries a human readable outcome.
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Journal Entry Removed
	Message string `json:"message"`
}

// ErrorResponse is returned for unexpected failures. Internal details are never exposed.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// currentUser returns the user attached by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.UserDB, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusForbidden, "Forbidden")
		return nil, false
	}
	return user, true
}
