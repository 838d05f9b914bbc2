package services

//go:generate mockgen -source=item.go -destination=item_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-users-items/internal/logger"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/sbilibin2017/gw-users-items/internal/repositories"
)

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, title string, description *string, ownerID int64) (*models.ItemDB, error)
}

// OwnerReader looks up the owner of a new item.
type OwnerReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// ItemService implements item reads and writes.
type ItemService struct {
	ownerReader OwnerReader
	itemReader  ItemReader
	itemWriter  ItemWriter
	cache       UserCache
	events      eventPublisher
}

// NewItemService creates a new ItemService. cache and kafkaWriter may be nil.
func NewItemService(
	ownerReader OwnerReader,
	itemReader ItemReader,
	itemWriter ItemWriter,
	cache UserCache,
	kafkaWriter KafkaWriter,
) *ItemService {
	return &ItemService{
		ownerReader: ownerReader,
		itemReader:  itemReader,
		itemWriter:  itemWriter,
		cache:       cache,
		events:      eventPublisher{kafkaWriter: kafkaWriter},
	}
}

// ListItems returns a page of items across all owners.
func (s *ItemService) ListItems(ctx context.Context, skip, limit uint64) ([]models.Item, error) {
	rows, err := s.itemReader.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list items", "skip", skip, "limit", limit, "error", err)
		return nil, err
	}

	items := make([]models.Item, 0, len(rows))
	for i := range rows {
		items = append(items, *models.NewItem(&rows[i]))
	}
	return items, nil
}

// CreateItem stores an item for ownerID. It fails with ErrUserNotFound
// when the owner does not exist.
func (s *ItemService) CreateItem(ctx context.Context, title string, description *string, ownerID int64) (*models.Item, error) {
	owner, err := s.ownerReader.GetByID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get item owner", "owner_id", ownerID, "error", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	row, err := s.itemWriter.Save(ctx, title, description, ownerID)
	if errors.Is(err, repositories.ErrForeignKeyViolation) {
		// owner deleted concurrently
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to save item", "owner_id", ownerID, "error", err)
		return nil, err
	}

	afterCommit(ctx, func(ctx context.Context) {
		if s.cache != nil {
			if err := s.cache.Delete(ctx, ownerID); err != nil {
				logger.Log.Warnw("user cache eviction failed", "id", ownerID, "error", err)
			}
		}
		s.events.publish(ctx, newEvent(models.EventItemCreated, ownerID, row.ID))
	})
	return models.NewItem(row), nil
}
