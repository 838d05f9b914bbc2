package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-users-items/internal/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL,
		hashed_password TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ix_users_email ON users (email)`,
	`CREATE TABLE IF NOT EXISTS items (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		owner_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS ix_items_title ON items (title)`,
	`CREATE INDEX IF NOT EXISTS ix_items_description ON items (description)`,
	`CREATE INDEX IF NOT EXISTS ix_items_owner_id ON items (owner_id)`,
}

// CreateSchema creates the users and items tables when they do not exist yet.
// Deleting a user removes its items through the foreign key.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, nil, err)
		if err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	logger.Log.Info("database schema is up to date")
	return nil
}
