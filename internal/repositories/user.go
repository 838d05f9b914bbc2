package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-users-items/internal/models"
)

var userColumns = []string{"id", "email", "hashed_password", "is_active"}

const userReturning = "RETURNING id, email, hashed_password, is_active"

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// List returns users ordered by id, skipping skip rows and returning at most limit.
func (r *UserReadRepository) List(ctx context.Context, skip, limit uint64) ([]models.UserDB, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		OrderBy("id").
		Offset(skip).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	users := []models.UserDB{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)
	logQuery(query, args, len(users), err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserReadRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.UserDB, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user models.UserDB
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an active user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, email, hashedPassword string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (email, hashed_password, is_active)
		VALUES ($1, $2, TRUE)
		` + userReturning

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, hashedPassword)

	// the hash stays out of the logs
	logQuery(query, []any{email, "***"}, user.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// Update writes the non-nil fields of upd and returns the stored row,
// or nil when the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error) {
	set := map[string]any{}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}

	query, args, err := psql.Update("users").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(userReturning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user models.UserDB
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// Delete removes the user and returns the deleted row, or nil when the user does not exist.
// Items owned by the user are removed by the ON DELETE CASCADE foreign key.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `DELETE FROM users WHERE id = $1 ` + userReturning

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
