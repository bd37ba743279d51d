// Package activity publishes a Kafka event for every successful board mutation
// and reads them back for downstream consumers.
package activity

//go:generate go run go.uber.org/mock/mockgen -source=./activity.go -destination=./mocks/activity_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"todoboard/config"
	"todoboard/infras/kafka"
	"todoboard/infras/otel"
	"todoboard/shared/constant"
	"todoboard/shared/timezone"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Type string

const (
	TypeTodoCreated    Type = "todo.created"
	TypeTodoUpdated    Type = "todo.updated"
	TypeTodoDeleted    Type = "todo.deleted"
	TypeTodoLiked      Type = "todo.like_toggled"
	TypeCommentAdded   Type = "comment.added"
	TypeCommentDeleted Type = "comment.deleted"
)

type Event struct {
	Type     Type      `json:"type"`
	TodoID   string    `json:"todo_id"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}

func NewEvent(eventType Type, todoID, username string) Event {
	return Event{
		Type:     eventType,
		TodoID:   todoID,
		Username: username,
		At:       timezone.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event Event) (err error) {
	if !p.cfg.Kafka.Enable {
		log.Debug().Str("type", string(event.Type)).Msg("Kafka disabled, activity event dropped")

		return nil
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.Finish(&err)

	scope.SetAttributes(map[string]any{
		"event.type":    string(event.Type),
		"event.todo_id": event.TodoID,
	})

	err = p.client.SendMessages(ctx, p.cfg.Kafka.Topic, kafka.Message{
		Key:   event.TodoID,
		Value: event,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	return nil
}

// Listen consumes the activity topic until ctx is done.
// Messages that cannot be decoded are logged and skipped.
func Listen(ctx context.Context, client kafka.Client, cfg *config.Config, handle func(Event)) {
	client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic, func(message kafkaGo.Message) {
		decoded, err := kafka.DecodeKafkaMessage[Event](message)
		if err != nil {
			log.Warn().Err(err).Str("key", string(message.Key)).Msg("Skipping undecodable activity event")

			return
		}

		event, ok := decoded.Value.(Event)
		if !ok {
			return
		}

		handle(event)
	})
}
