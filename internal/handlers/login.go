package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/models"
	"github.com/sbilibin2017/gw-journal/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	User *UserCredentials `json:"user"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Logged in user
	User *models.UserDB `json:"user"`

	// Success message
	// default: User successfully logged in!
	Message string `json:"message"`

	// Bearer token valid for 24 hours
	SessionToken string `json:"sessionToken"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a session token
// @Tags user
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 401 {object} handlers.MessageResponse "Incorrect email or password"
// @Failure 500 {object} handlers.MessageResponse "Failed to log user in"
// @Router /user/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, token, err := svc.Login(r.Context(), req.User.Email, req.User.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusUnauthorized, "Incorrect email or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Failed to log user in")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			User:         user,
			Message:      "User successfully logged in!",
			SessionToken: token,
		})
	}
}
