package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-journal/internal/models"
	"github.com/sbilibin2017/gw-journal/internal/repositories"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Create(t *testing.T) {
	fields := models.ProfileFields{FirstName: strPtr("Ada"), UserName: strPtr("ada")}

	tests := []struct {
		name     string
		existing *models.ProfileDB
		getErr   error
		saveErr  error
		wantErr  error
		wantSave bool
	}{
		{name: "created", wantSave: true},
		{name: "already exists", existing: &models.ProfileDB{ID: 1, UserID: 4}, wantErr: ErrProfileAlreadyExists},
		{name: "unique violation", saveErr: repositories.ErrAlreadyExists, wantErr: ErrProfileAlreadyExists, wantSave: true},
		{name: "lookup error", getErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "save error", saveErr: errors.New("save error"), wantErr: errors.New("save error"), wantSave: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockProfileStore(ctrl)
			svc := NewProfileService(store, NewMockOwnerJournalReader(ctrl))

			store.EXPECT().GetByUserID(ctx, int64(4)).Return(tt.existing, tt.getErr)
			if tt.wantSave {
				store.EXPECT().Save(ctx, int64(4), fields).Return(tt.saveErr)
			}

			err := svc.Create(ctx, 4, fields)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProfileService_GetMine(t *testing.T) {
	ctx := context.Background()
	user := &models.UserDB{ID: 4, Email: "ada@example.com"}

	t.Run("with journals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockProfileStore(ctrl)
		journals := NewMockOwnerJournalReader(ctrl)
		svc := NewProfileService(store, journals)

		profile := &models.ProfileDB{ID: 1, FirstName: strPtr("Ada"), UserID: 4}
		entries := []models.JournalDB{{ID: 3, Title: "T", Owner: 4}}

		store.EXPECT().GetByUserID(ctx, int64(4)).Return(profile, nil)
		journals.EXPECT().ListByOwner(ctx, int64(4)).Return(entries, nil)

		view, err := svc.GetMine(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, int64(1), view.ID)
		assert.Equal(t, "Ada", *view.FirstName)
		assert.Equal(t, int64(4), view.User.ID)
		assert.Equal(t, "ada@example.com", view.User.Email)
		assert.Equal(t, entries, view.User.Journals)
	})

	t.Run("no journals yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockProfileStore(ctrl)
		journals := NewMockOwnerJournalReader(ctrl)
		svc := NewProfileService(store, journals)

		store.EXPECT().GetByUserID(ctx, int64(4)).Return(&models.ProfileDB{ID: 1, UserID: 4}, nil)
		journals.EXPECT().ListByOwner(ctx, int64(4)).Return(nil, nil)

		view, err := svc.GetMine(ctx, user)
		require.NoError(t, err)
		assert.NotNil(t, view.User.Journals)
		assert.Empty(t, view.User.Journals)
	})

	t.Run("no profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockProfileStore(ctrl)
		svc := NewProfileService(store, NewMockOwnerJournalReader(ctrl))

		store.EXPECT().GetByUserID(ctx, int64(4)).Return(nil, nil)

		view, err := svc.GetMine(ctx, user)
		assert.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockProfileStore(ctrl)
		svc := NewProfileService(store, NewMockOwnerJournalReader(ctrl))

		store.EXPECT().GetByUserID(ctx, int64(4)).Return(nil, errors.New("db error"))

		view, err := svc.GetMine(ctx, user)
		assert.Error(t, err)
		assert.Nil(t, view)
	})

	t.Run("journal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockProfileStore(ctrl)
		journals := NewMockOwnerJournalReader(ctrl)
		svc := NewProfileService(store, journals)

		store.EXPECT().GetByUserID(ctx, int64(4)).Return(&models.ProfileDB{ID: 1, UserID: 4}, nil)
		journals.EXPECT().ListByOwner(ctx, int64(4)).Return(nil, errors.New("db error"))

		view, err := svc.GetMine(ctx, user)
		assert.Error(t, err)
		assert.Nil(t, view)
	})
}

func TestProfileService_Update(t *testing.T) {
	fields := models.ProfileFields{Bio: strPtr("hello")}

	tests := []struct {
		name       string
		existing   *models.ProfileDB
		getErr     error
		affected   int64
		updateErr  error
		wantUpdate bool
		wantErr    error
	}{
		{name: "updated", existing: &models.ProfileDB{ID: 1, UserID: 4}, affected: 1, wantUpdate: true},
		{name: "no profile", wantErr: ErrProfileNotFound},
		{name: "removed before write", existing: &models.ProfileDB{ID: 1, UserID: 4}, affected: 0, wantUpdate: true, wantErr: ErrProfileNotFound},
		{name: "lookup error", getErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "update error", existing: &models.ProfileDB{ID: 1, UserID: 4}, updateErr: errors.New("update error"), wantUpdate: true, wantErr: errors.New("update error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockProfileStore(ctrl)
			svc := NewProfileService(store, NewMockOwnerJournalReader(ctrl))

			store.EXPECT().GetByUserID(ctx, int64(4)).Return(tt.existing, tt.getErr)
			if tt.wantUpdate {
				store.EXPECT().Update(ctx, int64(4), fields).Return(tt.affected, tt.updateErr)
			}

			err := svc.Update(ctx, 4, fields)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProfileService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		existing   *models.ProfileDB
		getErr     error
		affected   int64
		deleteErr  error
		wantDelete bool
		wantErr    error
	}{
		{name: "deleted", existing: &models.ProfileDB{ID: 1, UserID: 4}, affected: 1, wantDelete: true},
		{name: "no profile", wantErr: ErrProfileNotFound},
		{name: "removed before write", existing: &models.ProfileDB{ID: 1, UserID: 4}, wantDelete: true, wantErr: ErrProfileNotFound},
		{name: "lookup error", getErr: errors.New("db error"), wantErr: errors.New("db error")},
		{name: "delete error", existing: &models.ProfileDB{ID: 1, UserID: 4}, deleteErr: errors.New("delete error"), wantDelete: true, wantErr: errors.New("delete error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockProfileStore(ctrl)
			svc := NewProfileService(store, NewMockOwnerJournalReader(ctrl))

			store.EXPECT().GetByUserID(ctx, int64(4)).Return(tt.existing, tt.getErr)
			if tt.wantDelete {
				store.EXPECT().Delete(ctx, int64(4)).Return(tt.affected, tt.deleteErr)
			}

			err := svc.Delete(ctx, 4)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
