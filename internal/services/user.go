package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-users-items/internal/logger"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/sbilibin2017/gw-users-items/internal/repositories"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	List(ctx context.Context, skip, limit uint64) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, hashedPassword string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) (*models.UserDB, error)
}

// ItemReader defines read-only operations for items.
type ItemReader interface {
	List(ctx context.Context, skip, limit uint64) ([]models.ItemDB, error)
	ListByOwnerIDs(ctx context.Context, ownerIDs []int64) ([]models.ItemDB, error)
}

// UserCache caches public users by id.
type UserCache interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// PasswordHasher turns a plaintext password into a stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserService implements user reads and writes.
// Lookups return a nil user, not an error, when nothing matches.
type UserService struct {
	userReader UserReader
	userWriter UserWriter
	itemReader ItemReader
	cache      UserCache
	hasher     PasswordHasher
	events     eventPublisher
}

// NewUserService creates a new UserService. cache and kafkaWriter may be nil.
func NewUserService(
	userReader UserReader,
	userWriter UserWriter,
	itemReader ItemReader,
	cache UserCache,
	hasher PasswordHasher,
	kafkaWriter KafkaWriter,
) *UserService {
	return &UserService{
		userReader: userReader,
		userWriter: userWriter,
		itemReader: itemReader,
		cache:      cache,
		hasher:     hasher,
		events:     eventPublisher{kafkaWriter: kafkaWriter},
	}
}

// GetUser returns the user with its items, reading through the cache.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warnw("user cache read failed", "id", id, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	row, err := s.userReader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	user, err := s.withItems(ctx, row)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("user cache write failed", "id", id, "error", err)
		}
	}
	return user, nil
}

// GetUserByEmail returns the user with the given email and its items.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalizeEmail(email)
	row, err := s.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "email", email, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return s.withItems(ctx, row)
}

// ListUsers returns a page of users, each with its items.
func (s *UserService) ListUsers(ctx context.Context, skip, limit uint64) ([]models.User, error) {
	rows, err := s.userReader.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "skip", skip, "limit", limit, "error", err)
		return nil, err
	}

	ids := make([]int64, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	items, err := s.itemReader.ListByOwnerIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list items of users", "error", err)
		return nil, err
	}

	byOwner := make(map[int64][]models.ItemDB, len(rows))
	for _, item := range items {
		byOwner[item.OwnerID] = append(byOwner[item.OwnerID], item)
	}

	users := make([]models.User, 0, len(rows))
	for i := range rows {
		users = append(users, *models.NewUser(&rows[i], byOwner[rows[i].ID]))
	}
	return users, nil
}

// CreateUser registers a new active user. It fails with ErrEmailAlreadyRegistered
// when the email is taken.
func (s *UserService) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	existing, err := s.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", email, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	row, err := s.userWriter.Save(ctx, email, hashed)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		// lost a race against a concurrent registration
		return nil, ErrEmailAlreadyRegistered
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		return nil, err
	}

	afterCommit(ctx, func(ctx context.Context) {
		s.events.publish(ctx, newEvent(models.EventUserCreated, row.ID, 0))
	})
	return models.NewUser(row, nil), nil
}

// UpdateUser writes the fields present in upd; absent fields keep their value.
// It returns nil when the user does not exist.
func (s *UserService) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	if upd.Empty() {
		return s.GetUser(ctx, id)
	}
	if upd.Email != nil {
		email := normalizeEmail(*upd.Email)
		upd.Email = &email
	}

	row, err := s.userWriter.Update(ctx, id, upd)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return nil, ErrEmailAlreadyRegistered
	}
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	afterCommit(ctx, func(ctx context.Context) {
		s.evict(ctx, id)
		s.events.publish(ctx, newEvent(models.EventUserUpdated, id, 0))
	})
	return s.withItems(ctx, row)
}

// DeleteUser removes the user and its items and returns the deleted user,
// or nil when the user does not exist.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (*models.User, error) {
	row, err := s.userWriter.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	afterCommit(ctx, func(ctx context.Context) {
		s.evict(ctx, id)
		s.events.publish(ctx, newEvent(models.EventUserDeleted, id, 0))
	})
	return models.NewUser(row, nil), nil
}

func (s *UserService) withItems(ctx context.Context, row *models.UserDB) (*models.User, error) {
	items, err := s.itemReader.ListByOwnerIDs(ctx, []int64{row.ID})
	if err != nil {
		logger.Log.Errorw("failed to list items of user", "id", row.ID, "error", err)
		return nil, err
	}
	return models.NewUser(row, items), nil
}

func (s *UserService) evict(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("user cache eviction failed", "id", id, "error", err)
	}
}

// normalizeEmail lowercases the domain part. The local part is kept as given.
func normalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
