package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sbilibin2017/gw-journal/internal/logger"
	"github.com/sbilibin2017/gw-journal/internal/models"
)

// Connect opens a pgx-backed sqlx pool and pings it. An unreachable store is an error.
func Connect(ctx context.Context, dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	if dsn == "" {
		return nil, errors.New("database url is required")
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Sync creates or alters the users, journals and profiles tables to match the models.
// It runs gorm AutoMigrate over the connection pool the repositories use.
func Sync(ctx context.Context, db *sqlx.DB) error {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormlogger.New(gormWriter{}, gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return fmt.Errorf("open schema session: %w", err)
	}

	if err := gdb.WithContext(ctx).AutoMigrate(
		&models.UserDB{},
		&models.JournalDB{},
		&models.ProfileDB{},
	); err != nil {
		return fmt.Errorf("sync schema: %w", err)
	}

	logger.Log.Infow("schema synchronized", "tables", []string{
		models.UserDB{}.TableName(),
		models.JournalDB{}.TableName(),
		models.ProfileDB{}.TableName(),
	})
	return nil
}

// gormWriter routes gorm's own log lines into the process logger.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	logger.Log.Warnf(format, args...)
}
