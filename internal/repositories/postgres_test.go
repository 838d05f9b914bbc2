package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, CreateSchema(context.Background(), db))
	// idempotent
	require.NoError(t, CreateSchema(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestPostgres_UserLifecycle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewUserReadRepository(db, nil)
	writeRepo := NewUserWriteRepository(db, nil)
	itemWriteRepo := NewItemWriteRepository(db, nil)
	itemReadRepo := NewItemReadRepository(db, nil)
	ctx := context.Background()

	alice, err := writeRepo.Save(ctx, "alice@example.com", "hash1")
	require.NoError(t, err)
	assert.True(t, alice.IsActive)

	_, err = writeRepo.Save(ctx, "alice@example.com", "hash2")
	assert.ErrorIs(t, err, ErrUniqueViolation)

	bob, err := writeRepo.Save(ctx, "bob@example.com", "hash3")
	require.NoError(t, err)
	assert.Greater(t, bob.ID, alice.ID)

	t.Run("lookups", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Equal(t, alice, got)

		got, err = readRepo.GetByEmail(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.Equal(t, bob.ID, got.ID)

		got, err = readRepo.GetByID(ctx, 100500)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("pagination", func(t *testing.T) {
		users, err := readRepo.List(ctx, 0, 100)
		assert.NoError(t, err)
		assert.Len(t, users, 2)

		users, err = readRepo.List(ctx, 1, 100)
		assert.NoError(t, err)
		if assert.Len(t, users, 1) {
			assert.Equal(t, bob.ID, users[0].ID)
		}
	})

	t.Run("items", func(t *testing.T) {
		desc := "hardcover"
		book, err := itemWriteRepo.Save(ctx, "Book", nil, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, book.Description)

		_, err = itemWriteRepo.Save(ctx, "Pen", &desc, bob.ID)
		require.NoError(t, err)

		_, err = itemWriteRepo.Save(ctx, "Ghost", nil, 100500)
		assert.ErrorIs(t, err, ErrForeignKeyViolation)

		items, err := itemReadRepo.List(ctx, 0, 100)
		assert.NoError(t, err)
		assert.Len(t, items, 2)

		owned, err := itemReadRepo.ListByOwnerIDs(ctx, []int64{alice.ID})
		assert.NoError(t, err)
		if assert.Len(t, owned, 1) {
			assert.Equal(t, book.ID, owned[0].ID)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		inactive := false
		got, err := writeRepo.Update(ctx, alice.ID, models.UserUpdate{IsActive: &inactive})
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.False(t, got.IsActive)

		taken := "bob@example.com"
		_, err = writeRepo.Update(ctx, alice.ID, models.UserUpdate{Email: &taken})
		assert.ErrorIs(t, err, ErrUniqueViolation)

		got, err = writeRepo.Update(ctx, 100500, models.UserUpdate{IsActive: &inactive})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete cascades to items", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Equal(t, alice.ID, deleted.ID)

		got, err := readRepo.GetByID(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		owned, err := itemReadRepo.ListByOwnerIDs(ctx, []int64{alice.ID})
		assert.NoError(t, err)
		assert.Empty(t, owned)

		deleted, err = writeRepo.Delete(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Nil(t, deleted)
	})
}
