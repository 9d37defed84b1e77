package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-journal/internal/models"
)

// ProfileRepository stores profiles keyed by their owning user.
// Statements run inside the request transaction when txGetter finds one.
type ProfileRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProfileRepository(db *sqlx.DB, txGetter TxGetter) *ProfileRepository {
	return &ProfileRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns nil, nil when the user has no profile.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.ProfileDB, error) {
	const query = `
		SELECT id, first_name, last_name, user_name, phone_number, bio, user_id, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, userID)

	logQuery(query, []any{userID}, profile.ID, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Save inserts the profile of userID. A second profile for the same user yields ErrAlreadyExists.
func (r *ProfileRepository) Save(ctx context.Context, userID int64, fields models.ProfileFields) error {
	const query = `
		INSERT INTO profiles (first_name, last_name, user_name, phone_number, bio, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{fields.FirstName, fields.LastName, fields.UserName, fields.PhoneNumber, fields.Bio, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, rowsAffected(res), err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update merges the non-nil fields into the profile of userID and returns the rows changed.
func (r *ProfileRepository) Update(ctx context.Context, userID int64, fields models.ProfileFields) (int64, error) {
	const query = `
		UPDATE profiles
		SET first_name = COALESCE($2, first_name),
		    last_name = COALESCE($3, last_name),
		    user_name = COALESCE($4, user_name),
		    phone_number = COALESCE($5, phone_number),
		    bio = COALESCE($6, bio),
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, fields.FirstName, fields.LastName, fields.UserName, fields.PhoneNumber, fields.Bio}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	return n, err
}

// Delete removes the profile of userID and returns the rows removed.
func (r *ProfileRepository) Delete(ctx context.Context, userID int64) (int64, error) {
	const query = `DELETE FROM profiles WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	n := rowsAffected(res)

	logQuery(query, []any{userID}, n, err)

	return n, err
}
