package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-users-items/internal/models"
)

var itemColumns = []string{"id", "title", "description", "owner_id"}

// ItemReadRepository handles item read operations
type ItemReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewItemReadRepository(db *sqlx.DB, txGetter TxGetter) *ItemReadRepository {
	return &ItemReadRepository{db: db, txGetter: txGetter}
}

// List returns items of all owners ordered by id, skipping skip rows and returning at most limit.
func (r *ItemReadRepository) List(ctx context.Context, skip, limit uint64) ([]models.ItemDB, error) {
	return r.selectItems(ctx, psql.Select(itemColumns...).
		From("items").
		OrderBy("id").
		Offset(skip).
		Limit(limit))
}

// ListByOwnerIDs returns the items of the given owners ordered by id.
func (r *ItemReadRepository) ListByOwnerIDs(ctx context.Context, ownerIDs []int64) ([]models.ItemDB, error) {
	if len(ownerIDs) == 0 {
		return []models.ItemDB{}, nil
	}
	return r.selectItems(ctx, psql.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"owner_id": ownerIDs}).
		OrderBy("id"))
}

func (r *ItemReadRepository) selectItems(ctx context.Context, b squirrel.SelectBuilder) ([]models.ItemDB, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	items := []models.ItemDB{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &items, query, args...)
	logQuery(query, args, len(items), err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ItemWriteRepository handles item write operations
type ItemWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewItemWriteRepository(db *sqlx.DB, txGetter TxGetter) *ItemWriteRepository {
	return &ItemWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an item owned by ownerID and returns the stored row.
func (r *ItemWriteRepository) Save(ctx context.Context, title string, description *string, ownerID int64) (*models.ItemDB, error) {
	const query = `
		INSERT INTO items (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, owner_id
	`
	args := []any{title, description, ownerID}

	var item models.ItemDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &item, query, args...)
	logQuery(query, args, item.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}
