package remote_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelsphere/config"
	"hotelsphere/infras/kafka"
	kafkaMocks "hotelsphere/infras/kafka/mocks"
	otelMocks "hotelsphere/infras/otel/mocks"
	"hotelsphere/internal/replica"
	"hotelsphere/internal/replica/remote"
)

func feedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.ClientID = "desk-1"
	cfg.Kafka.ConsumerGroup = "pms"
	cfg.Kafka.ChangeTopic = "pms.changes"

	return cfg
}

func TestFeed_PublishKeysByRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	feed := remote.NewFeed(client, feedConfig(), otelMocks.NewOtel())

	event := replica.NewDeleteEvent(replica.Rooms, "r101", "desk-1", time.Now())

	client.EXPECT().
		SendMessages(gomock.Any(), "pms.changes", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "rooms:r101", messages[0].Key)
			assert.Equal(t, map[string]string{"origin": "desk-1"}, messages[0].Headers)

			return nil
		})

	require.NoError(t, feed.Publish(context.Background(), event))
}

func TestFeed_PublishNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	feed := remote.NewFeed(client, feedConfig(), otelMocks.NewOtel())

	assert.NoError(t, feed.Publish(context.Background()))
}

func TestFeed_SubscribeDecodesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	feed := remote.NewFeed(client, feedConfig(), otelMocks.NewOtel())

	event, err := replica.NewUpsertEvent(replica.Rooms, true, map[string]string{"id": "r101"}, "desk-2", time.Now())
	require.NoError(t, err)

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	client.EXPECT().
		Consume(gomock.Any(), "pms.desk-1", "pms.changes", gomock.Any()).
		Do(func(ctx context.Context, _, _ string, handler kafka.Handler) {
			assert.NoError(t, handler(ctx, kafkaGo.Message{Value: payload}))
			assert.Error(t, handler(ctx, kafkaGo.Message{Value: []byte("not json")}))
			cancel()
		})

	var received []replica.ChangeEvent

	err = feed.Subscribe(ctx, func(_ context.Context, event replica.ChangeEvent) error {
		received = append(received, event)

		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, received, 1)
	assert.Equal(t, replica.EventInsert, received[0].EventType)
	assert.Equal(t, "desk-2", received[0].Origin)
}
