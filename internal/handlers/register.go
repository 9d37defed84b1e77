package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/models"
	"github.com/sbilibin2017/gw-journal/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// UserCredentials holds the login email and the plaintext password.
// swagger:model UserCredentials
type UserCredentials struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	User *UserCredentials `json:"user"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User successfully registered
	Message string `json:"message"`

	// Created user
	User *models.UserDB `json:"user"`

	// Bearer token valid for 24 hours
	SessionToken string `json:"sessionToken"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. Password is hashed before storing.
// @Tags user
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 400 {object} handlers.MessageResponse "Password must be at most 72 bytes"
// @Failure 409 {object} handlers.MessageResponse "Email already in use"
// @Failure 500 {object} handlers.MessageResponse "Failed to register user"
// @Router /user/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User == nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.User.Email == "" || req.User.Password == "" {
			writeMessage(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, token, err := svc.Register(r.Context(), req.User.Email, req.User.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeMessage(w, http.StatusConflict, "Email already in use")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeMessage(w, http.StatusBadRequest, "Password must be at most 72 bytes")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Failed to register user")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message:      "User successfully registered",
			User:         user,
			SessionToken: token,
		})
	}
}
