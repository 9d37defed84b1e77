package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-journal/internal/models"
)

const journalColumns = `id, title, date, entry, owner, created_at, updated_at`

// JournalWriteRepository handles journal write operations.
// Update and Delete are always scoped by owner.
type JournalWriteRepository struct {
	db *sqlx.DB
}

func NewJournalWriteRepository(db *sqlx.DB) *JournalWriteRepository {
	return &JournalWriteRepository{db: db}
}

// Save inserts an entry owned by owner and returns the stored row.
func (r *JournalWriteRepository) Save(ctx context.Context, owner int64, title, date, entry string) (*models.JournalDB, error) {
	query := `
		INSERT INTO journals (title, date, entry, owner, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + journalColumns
	args := []any{title, date, entry, owner}

	var journal models.JournalDB
	err := r.db.GetContext(ctx, &journal, query, args...)

	logQuery(query, args, journal.ID, err)

	if err != nil {
		return nil, err
	}
	return &journal, nil
}

// Update applies the non-nil changes to entry id if it belongs to owner.
// It returns the number of rows changed, 0 when the entry is missing or owned by someone else.
func (r *JournalWriteRepository) Update(ctx context.Context, owner, id int64, changes models.JournalChanges) (int64, error) {
	const query = `
		UPDATE journals
		SET title = COALESCE($3, title),
		    date = COALESCE($4, date),
		    entry = COALESCE($5, entry),
		    updated_at = NOW()
		WHERE id = $1 AND owner = $2
	`
	args := []any{id, owner, changes.Title, changes.Date, changes.Entry}

	res, err := r.db.ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// Delete removes entry id if it belongs to owner and returns the number of rows removed.
func (r *JournalWriteRepository) Delete(ctx context.Context, owner, id int64) (int64, error) {
	const query = `
		DELETE FROM journals
		WHERE id = $1 AND owner = $2
	`
	args := []any{id, owner}

	res, err := r.db.ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// JournalReadRepository handles journal read operations
type JournalReadRepository struct {
	db *sqlx.DB
}

func NewJournalReadRepository(db *sqlx.DB) *JournalReadRepository {
	return &JournalReadRepository{db: db}
}

// ListAll returns every entry of every user.
func (r *JournalReadRepository) ListAll(ctx context.Context) ([]models.JournalDB, error) {
	query := `SELECT ` + journalColumns + ` FROM journals ORDER BY id`
	return r.list(ctx, query)
}

// ListByOwner returns the entries owned by owner.
func (r *JournalReadRepository) ListByOwner(ctx context.Context, owner int64) ([]models.JournalDB, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE owner = $1 ORDER BY id`
	return r.list(ctx, query, owner)
}

// ListByTitle returns the entries whose title equals title exactly, across all owners.
func (r *JournalReadRepository) ListByTitle(ctx context.Context, title string) ([]models.JournalDB, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE title = $1 ORDER BY id`
	return r.list(ctx, query, title)
}

func (r *JournalReadRepository) list(ctx context.Context, query string, args ...any) ([]models.JournalDB, error) {
	journals := []models.JournalDB{}
	err := r.db.SelectContext(ctx, &journals, query, args...)

	logQuery(query, args, len(journals), err)

	if err != nil {
		return nil, err
	}
	return journals, nil
}
