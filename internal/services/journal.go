package services

//go:generate mockgen -source=journal.go -destination=journal_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/models"
)

// JournalWriter defines owner-scoped journal writes.
type JournalWriter interface {
	Save(ctx context.Context, owner int64, title, date, entry string) (*models.JournalDB, error)
	Update(ctx context.Context, owner, id int64, changes models.JournalChanges) (int64, error)
	Delete(ctx context.Context, owner, id int64) (int64, error)
}

// JournalReader defines journal queries.
type JournalReader interface {
	ListAll(ctx context.Context) ([]models.JournalDB, error)
	ListByOwner(ctx context.Context, owner int64) ([]models.JournalDB, error)
	ListByTitle(ctx context.Context, title string) ([]models.JournalDB, error)
}

// JournalService handles journal entries.
type JournalService struct {
	writer JournalWriter
	reader JournalReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(writer JournalWriter, reader JournalReader) *JournalService {
	return &JournalService{writer: writer, reader: reader}
}

// Create stores a new entry owned by owner.
func (s *JournalService) Create(ctx context.Context, owner int64, title, date, entry string) (*models.JournalDB, error) {
	journal, err := s.writer.Save(ctx, owner, title, date, entry)
	if err != nil {
		logger.Log.Errorw("failed to create journal", "owner", owner, "error", err)
		return nil, err
	}
	return journal, nil
}

func (s *JournalService) ListAll(ctx context.Context) ([]models.JournalDB, error) {
	journals, err := s.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list journals", "error", err)
		return nil, err
	}
	return journals, nil
}

func (s *JournalService) ListByOwner(ctx context.Context, owner int64) ([]models.JournalDB, error) {
	journals, err := s.reader.ListByOwner(ctx, owner)
	if err != nil {
		logger.Log.Errorw("failed to list own journals", "owner", owner, "error", err)
		return nil, err
	}
	return journals, nil
}

func (s *JournalService) ListByTitle(ctx context.Context, title string) ([]models.JournalDB, error) {
	journals, err := s.reader.ListByTitle(ctx, title)
	if err != nil {
		logger.Log.Errorw("failed to list journals by title", "title", title, "error", err)
		return nil, err
	}
	return journals, nil
}

// Update changes entry id when it belongs to owner and returns the rows affected.
// Zero rows is not an error: the caller sees the count.
func (s *JournalService) Update(ctx context.Context, owner, id int64, changes models.JournalChanges) (int64, error) {
	n, err := s.writer.Update(ctx, owner, id, changes)
	if err != nil {
		logger.Log.Errorw("failed to update journal", "owner", owner, "id", id, "error", err)
		return 0, err
	}
	if n == 0 {
		logger.Log.Warnw("journal update matched no rows", "owner", owner, "id", id)
	}
	return n, nil
}

// Delete removes entry id when it belongs to owner and returns the rows affected.
func (s *JournalService) Delete(ctx context.Context, owner, id int64) (int64, error) {
	n, err := s.writer.Delete(ctx, owner, id)
	if err != nil {
		logger.Log.Errorw("failed to delete journal", "owner", owner, "id", id, "error", err)
		return 0, err
	}
	if n == 0 {
		logger.Log.Warnw("journal delete matched no rows", "owner", owner, "id", id)
	}
	return n, nil
}
