package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-journal/internal/models"
)

var journalRowColumns = []string{"id", "title", "date", "entry", "owner", "created_at", "updated_at"}

func strPtr(s string) *string { return &s }

func TestJournalWriteRepository_Save(t *testing.T) {
	now := time.Now()
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO journals (title, date, entry, owner, created_at, updated_at)")).
		WithArgs("T", "2024-01-01", "E", int64(1)).
		WillReturnRows(sqlmock.NewRows(journalRowColumns).AddRow(10, "T", "2024-01-01", "E", 1, now, now))

	journal, err := NewJournalWriteRepository(db).Save(context.Background(), 1, "T", "2024-01-01", "E")
	require.NoError(t, err)
	assert.Equal(t, int64(10), journal.ID)
	assert.Equal(t, int64(1), journal.Owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalWriteRepository_Update(t *testing.T) {
	update := regexp.QuoteMeta("UPDATE journals SET title = COALESCE($3, title)") + ".*" +
		regexp.QuoteMeta("WHERE id = $1 AND owner = $2")

	tests := []struct {
		name     string
		affected int64
		err      error
	}{
		{name: "owner matches", affected: 1},
		{name: "wrong owner or missing entry", affected: 0},
		{name: "store failure", err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			expect := mock.ExpectExec(update).WithArgs(int64(5), int64(2), "New title", nil, nil)
			if tt.err != nil {
				expect.WillReturnError(tt.err)
			} else {
				expect.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			n, err := NewJournalWriteRepository(db).Update(context.Background(), 2, 5, models.JournalChanges{Title: strPtr("New title")})
			if tt.err != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.affected, n)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestJournalWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	del := regexp.QuoteMeta("DELETE FROM journals WHERE id = $1 AND owner = $2")

	mock.ExpectExec(del).WithArgs(int64(5), int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(del).WithArgs(int64(5), int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewJournalWriteRepository(db)

	n, err := repo.Delete(context.Background(), 2, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(context.Background(), 3, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalReadRepository(t *testing.T) {
	now := time.Now()

	t.Run("ListAll", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM journals ORDER BY id")).
			WillReturnRows(sqlmock.NewRows(journalRowColumns).
				AddRow(1, "A", "d", "e", 1, now, now).
				AddRow(2, "B", "d", "e", 2, now, now))

		journals, err := NewJournalReadRepository(db).ListAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, journals, 2)
	})

	t.Run("ListByOwner", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM journals WHERE owner = $1")).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(journalRowColumns).AddRow(2, "B", "d", "e", 2, now, now))

		journals, err := NewJournalReadRepository(db).ListByOwner(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, journals, 1)
		assert.Equal(t, int64(2), journals[0].Owner)
	})

	t.Run("ListByTitle empty result is an empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM journals WHERE title = $1")).
			WithArgs("none").
			WillReturnRows(sqlmock.NewRows(journalRowColumns))

		journals, err := NewJournalReadRepository(db).ListByTitle(context.Background(), "none")
		require.NoError(t, err)
		assert.NotNil(t, journals)
		assert.Empty(t, journals)
	})

	t.Run("store failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM journals").WillReturnError(errors.New("db down"))

		journals, err := NewJournalReadRepository(db).ListAll(context.Background())
		assert.Error(t, err)
		assert.Nil(t, journals)
	})
}
