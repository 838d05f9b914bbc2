package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCreateSchema(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`CREATE UNIQUE INDEX IF NOT EXISTS ix_users_email`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS items`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`ix_items_title`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`ix_items_description`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`ix_items_owner_id`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, CreateSchema(context.Background(), db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at first failure", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnError(sql.ErrConnDone)

		err := CreateSchema(context.Background(), db)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
