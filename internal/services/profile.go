package services

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/models"
	"github.com/sbilibin2017/gw-journal/internal/repositories"
)

var (
	ErrProfileAlreadyExists = errors.New("already associated profile detected")
	ErrProfileNotFound      = errors.New("user does not have an associated profile")
)

// ProfileStore defines profile persistence keyed by user id.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.ProfileDB, error)
	Save(ctx context.Context, userID int64, fields models.ProfileFields) error
	Update(ctx context.Context, userID int64, fields models.ProfileFields) (int64, error)
	Delete(ctx context.Context, userID int64) (int64, error)
}

// OwnerJournalReader lists the journal entries of one user.
type OwnerJournalReader interface {
	ListByOwner(ctx context.Context, owner int64) ([]models.JournalDB, error)
}

// ProfileService handles the single profile of each user.
type ProfileService struct {
	store    ProfileStore
	journals OwnerJournalReader
}

func NewProfileService(store ProfileStore, journals OwnerJournalReader) *ProfileService {
	return &ProfileService{store: store, journals: journals}
}

// Create stores the profile of userID unless one already exists.
func (s *ProfileService) Create(ctx context.Context, userID int64, fields models.ProfileFields) error {
	existing, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up profile", "userID", userID, "error", err)
		return err
	}
	if existing != nil {
		return ErrProfileAlreadyExists
	}

	if err := s.store.Save(ctx, userID, fields); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return ErrProfileAlreadyExists
		}
		logger.Log.Errorw("failed to create profile", "userID", userID, "error", err)
		return err
	}
	return nil
}

// GetMine returns the profile of user with the user's id, email and journal entries.
// It returns nil, nil when the user has no profile.
func (s *ProfileService) GetMine(ctx context.Context, user *models.UserDB) (*models.ProfileView, error) {
	profile, err := s.store.GetByUserID(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", user.ID, "error", err)
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	journals, err := s.journals.ListByOwner(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list profile journals", "userID", user.ID, "error", err)
		return nil, err
	}
	if journals == nil {
		journals = []models.JournalDB{}
	}

	return &models.ProfileView{
		ProfileDB: *profile,
		User: models.ProfileOwner{
			ID:       user.ID,
			Email:    user.Email,
			Journals: journals,
		},
	}, nil
}

// Update merges fields into the existing profile of userID.
func (s *ProfileService) Update(ctx context.Context, userID int64, fields models.ProfileFields) error {
	if err := s.requireProfile(ctx, userID); err != nil {
		return err
	}

	n, err := s.store.Update(ctx, userID, fields)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "error", err)
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Delete removes the profile of userID.
func (s *ProfileService) Delete(ctx context.Context, userID int64) error {
	if err := s.requireProfile(ctx, userID); err != nil {
		return err
	}

	n, err := s.store.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete profile", "userID", userID, "error", err)
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (s *ProfileService) requireProfile(ctx context.Context, userID int64) error {
	existing, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up profile", "userID", userID, "error", err)
		return err
	}
	if existing == nil {
		return ErrProfileNotFound
	}
	return nil
}
