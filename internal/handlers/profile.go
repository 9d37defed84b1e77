package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-journal/internal/models"
	"github.com/sbilibin2017/gw-journal/internal/services"
)

// ProfileCreator creates the caller's profile.
type ProfileCreator interface {
	Create(ctx context.Context, userID int64, fields models.ProfileFields) error
}

// ProfileGetter returns the caller's profile view.
type ProfileGetter interface {
	GetMine(ctx context.Context, user *models.UserDB) (*models.ProfileView, error)
}

// ProfileUpdater merges changes into the caller's profile.
type ProfileUpdater interface {
	Update(ctx context.Context, userID int64, fields models.ProfileFields) error
}

// ProfileDeleter removes the caller's profile.
type ProfileDeleter interface {
	Delete(ctx context.Context, userID int64) error
}

// ProfileFields is the content of a profile. Omitted fields are left unchanged on update.
// swagger:model ProfileFields
type ProfileFields struct {
	// default: John
	FirstName *string `json:"firstName"`
	// default: Doe
	LastName *string `json:"lastName"`
	// default: jdoe
	UserName *string `json:"userName"`
	// default: 555-0100
	PhoneNumber *string `json:"phoneNumber"`
	// default: Writes every day.
	Bio *string `json:"bio"`
}

// ProfileRequest is the JSON body for creating or updating a profile.
// swagger:model ProfileRequest
type ProfileRequest struct {
	Profile *ProfileFields `json:"profile"`
}

// MyProfileResponse wraps the caller's profile.
// swagger:model MyProfileResponse
type MyProfileResponse struct {
	// default: 200
	StatusCode int `json:"statusCode"`

	// default: Profile successfully retrieved
	Message string `json:"message"`

	MyProfile *models.ProfileView `json:"myProfile"`
}

func decodeProfile(r *http.Request) (models.ProfileFields, bool) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Profile == nil {
		return models.ProfileFields{}, false
	}
	return models.ProfileFields{
		FirstName:   req.Profile.FirstName,
		LastName:    req.Profile.LastName,
		UserName:    req.Profile.UserName,
		PhoneNumber: req.Profile.PhoneNumber,
		Bio:         req.Profile.Bio,
	}, true
}

// NewCreateProfileHandler returns an HTTP handler creating the caller's profile.
// @Summary Create profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profileRequest body handlers.ProfileRequest true "Profile"
// @Success 201 {object} handlers.MessageResponse "Successful profile creation"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 409 {object} handlers.MessageResponse "Already associated Profile detected"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/new [post]
// @Security BearerAuth
func NewCreateProfileHandler(svc ProfileCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		fields, ok := decodeProfile(r)
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.Create(r.Context(), user.ID, fields); err != nil {
			if errors.Is(err, services.ErrProfileAlreadyExists) {
				writeMessage(w, http.StatusConflict, "Already associated Profile detected")
				return
			}
			writeInternalError(w)
			return
		}

		writeMessage(w, http.StatusCreated, "Successful profile creation")
	}
}

// NewGetMyProfileHandler returns an HTTP handler reading the caller's profile
// together with the caller's id, email and journal entries.
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.MyProfileResponse "Profile successfully retrieved"
// @Success 204 "No profile"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/myprofile [get]
// @Security BearerAuth
func NewGetMyProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetMine(r.Context(), user)
		if err != nil {
			writeInternalError(w)
			return
		}
		if profile == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, MyProfileResponse{
			StatusCode: http.StatusOK,
			Message:    "Profile successfully retrieved",
			MyProfile:  profile,
		})
	}
}

// NewUpdateProfileHandler returns an HTTP handler merging changes into the caller's profile.
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profileRequest body handlers.ProfileRequest true "Fields to change"
// @Success 200 {object} handlers.MessageResponse "Successful profile update"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body"
// @Failure 404 {object} handlers.MessageResponse "User does not have an associated profile"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/update [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		fields, ok := decodeProfile(r)
		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.Update(r.Context(), user.ID, fields); err != nil {
			writeProfileError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Successful profile update")
	}
}

// NewDeleteProfileHandler returns an HTTP handler removing the caller's profile.
// @Summary Delete profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Successful profile delete"
// @Failure 404 {object} handlers.MessageResponse "User does not have an associated profile"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/delete [delete]
// @Security BearerAuth
func NewDeleteProfileHandler(svc ProfileDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user.ID); err != nil {
			writeProfileError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, "Successful profile delete")
	}
}

func writeProfileError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrProfileNotFound) {
		writeMessage(w, http.StatusNotFound, "User does not have an associated profile")
		return
	}
	writeInternalError(w)
}
