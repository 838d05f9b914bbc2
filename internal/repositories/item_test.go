package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var itemRowColumns = []string{"id", "title", "description", "owner_id"}

func TestItemReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemReadRepository(db, nil)

	mock.ExpectQuery(`SELECT id, title, description, owner_id FROM items ORDER BY id LIMIT 100 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(1, "Book", nil, 1).
			AddRow(2, "Pen", "blue", 1))

	items, err := repo.List(context.Background(), 0, 100)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Nil(t, items[0].Description)
	if assert.NotNil(t, items[1].Description) {
		assert.Equal(t, "blue", *items[1].Description)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemReadRepository_ListByOwnerIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemReadRepository(db, nil)
	ctx := context.Background()

	t.Run("no owners skips the query", func(t *testing.T) {
		items, err := repo.ListByOwnerIDs(ctx, nil)
		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("owners", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM items WHERE owner_id IN \(\$1,\$2\) ORDER BY id`).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows(itemRowColumns).
				AddRow(1, "Book", nil, 1).
				AddRow(2, "Pen", nil, 2))

		items, err := repo.ListByOwnerIDs(ctx, []int64{1, 2})
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(2), items[1].OwnerID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemWriteRepository(db, nil)
	ctx := context.Background()

	t.Run("without description", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO items`).
			WithArgs("Book", nil, int64(1)).
			WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(1, "Book", nil, 1))

		item, err := repo.Save(ctx, "Book", nil, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), item.ID)
		assert.Nil(t, item.Description)
	})

	t.Run("unknown owner", func(t *testing.T) {
		desc := "x"
		mock.ExpectQuery(`INSERT INTO items`).
			WithArgs("Book", desc, int64(99)).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "items_owner_id_fkey"})

		item, err := repo.Save(ctx, "Book", &desc, 99)
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
		assert.Nil(t, item)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
