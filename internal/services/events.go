package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-users-items/internal/logger"
	"github.com/sbilibin2017/gw-users-items/internal/middlewares"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// eventPublisher publishes lifecycle events. Failures are logged and never
// returned: the record change has already been accepted.
type eventPublisher struct {
	kafkaWriter KafkaWriter
}

func newEvent(eventType string, userID, itemID int64) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		ItemID:    itemID,
	}
}

// publish writes the event keyed by user id so that events of one user stay ordered.
func (p eventPublisher) publish(ctx context.Context, evt models.Event) {
	if p.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping event", "event_id", evt.EventID, "type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.UserID, 10)),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", evt.EventID, "type", evt.Type, "user_id", evt.UserID)
	}
}

// afterCommit defers fn until the request transaction commits. fn gets a context
// that outlives the request cancellation, since the response is already sent.
func afterCommit(ctx context.Context, fn func(ctx context.Context)) {
	middlewares.AfterCommit(ctx, func() {
		fn(context.WithoutCancel(ctx))
	})
}
