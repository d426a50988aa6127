package remote

//go:generate go run go.uber.org/mock/mockgen -source=./feed.go -destination=./mocks/feed_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelsphere/config"
	"hotelsphere/infras/kafka"
	"hotelsphere/infras/otel"
	"hotelsphere/internal/replica"
	"hotelsphere/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	defaultChangeTopic   = "hotelsphere.changes"
	defaultConsumerGroup = "hotelsphere"
	headerOrigin         = "origin"
)

// EventHandler applies one change event.
type EventHandler func(ctx context.Context, event replica.ChangeEvent) error

// Feed is the realtime change channel shared by every client of the replica.
type Feed interface {
	Publish(ctx context.Context, events ...replica.ChangeEvent) error
	Subscribe(ctx context.Context, handler EventHandler) error
}

type feedImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewFeed(client kafka.Client, cfg *config.Config, otel otel.Otel) Feed {
	return &feedImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (f *feedImpl) topic() string {
	if f.cfg.Kafka.ChangeTopic != "" {
		return f.cfg.Kafka.ChangeTopic
	}

	return defaultChangeTopic
}

// group is unique per client so that every client sees every event.
func (f *feedImpl) group() string {
	group := f.cfg.Kafka.ConsumerGroup
	if group == "" {
		group = defaultConsumerGroup
	}

	return group + "." + ClientID(f.cfg)
}

func eventKey(event replica.ChangeEvent) string {
	id, err := event.OldID()
	if err != nil {
		return string(event.Table)
	}

	return string(event.Table) + ":" + id
}

func (f *feedImpl) Publish(ctx context.Context, events ...replica.ChangeEvent) (err error) {
	ctx, scope := f.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		messages = append(messages, kafka.Message{
			Key:     eventKey(event),
			Value:   event,
			Headers: map[string]string{headerOrigin: event.Origin},
		})
	}

	if err = f.client.SendMessages(ctx, f.topic(), messages...); err != nil {
		return fmt.Errorf("failed to publish change events: %w", err)
	}

	return nil
}

// Subscribe blocks, delivering events to handler until ctx ends.
func (f *feedImpl) Subscribe(ctx context.Context, handler EventHandler) error {
	topic := f.topic()
	group := f.group()

	log.Info().Str("topic", topic).Str("group", group).Msg("Subscribing to change feed")

	f.client.Consume(ctx, group, topic, func(ctx context.Context, message kafkaGo.Message) error {
		ctx, scope := f.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Receive")
		defer scope.End()

		event, err := kafka.Decode[replica.ChangeEvent](message)
		if err != nil {
			scope.TraceError(err)

			return fmt.Errorf("failed to decode change event: %w", err)
		}

		scope.SetAttribute(constant.OtelTableAttributeKey, string(event.Table))

		return handler(ctx, event)
	})

	return ctx.Err()
}
