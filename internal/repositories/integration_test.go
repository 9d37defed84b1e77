package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-journal/internal/database"
	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/models"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in -short mode")
	}
	logger.Initialize("debug")
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := database.Connect(ctx, dsn, 10, 5)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Sync(ctx, db))
	return db
}

func TestJournalOwnershipScoping(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db)
	alice, err := users.Save(ctx, "alice@example.com", "hash")
	require.NoError(t, err)
	bob, err := users.Save(ctx, "bob@example.com", "hash")
	require.NoError(t, err)

	_, err = users.Save(ctx, "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	writer := NewJournalWriteRepository(db)
	reader := NewJournalReadRepository(db)

	entry, err := writer.Save(ctx, alice.ID, "T", "2024-01-01", "E")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, entry.Owner)

	// bob cannot touch alice's entry
	n, err := writer.Update(ctx, bob.ID, entry.ID, models.JournalChanges{Title: strPtr("hijacked")})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = writer.Delete(ctx, bob.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	mine, err := reader.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "T", mine[0].Title)
	assert.Equal(t, "E", mine[0].Entry)

	all, err := reader.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byTitle, err := reader.ListByTitle(ctx, "T")
	require.NoError(t, err)
	assert.Len(t, byTitle, 1)

	bobs, err := reader.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	// partial update by the owner keeps untouched fields
	n, err = writer.Update(ctx, alice.ID, entry.ID, models.JournalChanges{Entry: strPtr("E2")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mine, err = reader.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", mine[0].Title)
	assert.Equal(t, "E2", mine[0].Entry)

	n, err = writer.Delete(ctx, alice.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProfileOnePerUser(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	user, err := NewUserWriteRepository(db).Save(ctx, "carol@example.com", "hash")
	require.NoError(t, err)

	repo := NewProfileRepository(db, nil)
	require.NoError(t, repo.Save(ctx, user.ID, models.ProfileFields{FirstName: strPtr("Carol")}))

	err = repo.Save(ctx, user.ID, models.ProfileFields{FirstName: strPtr("Other")})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	profile, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Carol", *profile.FirstName)

	n, err := repo.Update(ctx, user.ID, models.ProfileFields{Bio: strPtr("writer")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	profile, err = repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carol", *profile.FirstName)
	assert.Equal(t, "writer", *profile.Bio)

	n, err = repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	profile, err = repo.GetByUserID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Nil(t, profile)
}
