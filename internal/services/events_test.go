package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-users-items/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockKafka := NewMockKafkaWriter(ctrl)
	p := eventPublisher{kafkaWriter: mockKafka}

	evt := newEvent(models.EventItemCreated, 5, 9)
	assert.NotEmpty(t, evt.EventID)

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)
			assert.Equal(t, "5", string(msgs[0].Key))

			var got models.Event
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, evt, got)
			return nil
		})

	p.publish(context.Background(), evt)
}

func TestEventPublisher_ErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockKafka := NewMockKafkaWriter(ctrl)
	p := eventPublisher{kafkaWriter: mockKafka}

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka error")).Times(1)

	assert.NotPanics(t, func() {
		p.publish(context.Background(), newEvent(models.EventUserDeleted, 1, 0))
	})
}

func TestEventPublisher_NoWriter(t *testing.T) {
	p := eventPublisher{}
	assert.NotPanics(t, func() {
		p.publish(context.Background(), newEvent(models.EventUserCreated, 1, 0))
	})
}
