package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_PublishReorderAlert(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event ReorderAlertEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.EventType != EventTypeReorderAlert {
			return errors.New("unexpected event type " + event.EventType)
		}
		if event.EventID == "" || event.Timestamp.IsZero() {
			return errors.New("event metadata not populated")
		}
		if event.ItemID != "4" || event.Status != "URGENT" {
			return errors.New("unexpected payload")
		}
		return nil
	})

	pub := NewPublisherWithProducer(producer, "")
	err := pub.PublishReorderAlert(context.Background(), ReorderAlertEvent{
		ItemID:   "4",
		ItemName: "Mentega",
		Status:   "URGENT",
	})
	require.NoError(t, err)
	require.NoError(t, pub.Close())
}

func TestPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewPublisherWithProducer(producer, "alerts")
	err := pub.PublishReorderAlert(context.Background(), ReorderAlertEvent{ItemID: "1"})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}

func alertMessage(t *testing.T, eventType string, event ReorderAlertEvent) *sarama.ConsumerMessage {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)

	msg := &sarama.ConsumerMessage{Topic: TopicReorderAlerts, Value: body}
	if eventType != "" {
		msg.Headers = []*sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		}
	}
	return msg
}

func TestConsumer_HandleMessage(t *testing.T) {
	c := &Consumer{}

	var got []ReorderAlertEvent
	c.RegisterHandler(EventTypeReorderAlert, func(_ context.Context, event ReorderAlertEvent) error {
		got = append(got, event)
		return nil
	})

	err := c.handleMessage(context.Background(), alertMessage(t, EventTypeReorderAlert, ReorderAlertEvent{
		EventID:  "evt-1",
		ItemID:   "2",
		ItemName: "Gula Pasir",
		Status:   "WARNING",
	}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gula Pasir", got[0].ItemName)
	assert.Equal(t, "WARNING", got[0].Status)
}

func TestConsumer_HandleMessageErrors(t *testing.T) {
	c := &Consumer{}
	handlerErr := errors.New("boom")
	c.RegisterHandler(EventTypeReorderAlert, func(context.Context, ReorderAlertEvent) error {
		return handlerErr
	})

	ctx := context.Background()

	err := c.handleMessage(ctx, alertMessage(t, "", ReorderAlertEvent{}))
	assert.ErrorIs(t, err, ErrMissingEventType)

	err = c.handleMessage(ctx, alertMessage(t, "other.event", ReorderAlertEvent{}))
	assert.ErrorIs(t, err, ErrNoHandler)

	bad := alertMessage(t, EventTypeReorderAlert, ReorderAlertEvent{})
	bad.Value = []byte("{not json")
	err = c.handleMessage(ctx, bad)
	assert.Error(t, err)

	err = c.handleMessage(ctx, alertMessage(t, EventTypeReorderAlert, ReorderAlertEvent{ItemID: "1"}))
	assert.ErrorIs(t, err, handlerErr)
}
