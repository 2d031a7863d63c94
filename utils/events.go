package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cppla/inkpost/config"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Routing keys for domain events.
const (
	EventUserRegistered = "user.registered"
	EventUserDeleted    = "user.deleted"
	EventArticleCreated = "article.created"
	EventArticleDeleted = "article.deleted"
	EventArticleLiked   = "article.liked"
	EventArticleUnliked = "article.unliked"
	EventUserFollowed   = "user.followed"
	EventUserUnfollowed = "user.unfollowed"
)

const publishTimeout = 2 * time.Second

// Event is the JSON body of every published message.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

// Publisher emits domain events. Publishing is fire-and-forget from the request's point of view.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, data interface{}) error
	Close() error
}

// NewPublisher returns an AMQP publisher when RABBITMQ_URL is set and reachable, otherwise a no-op.
func NewPublisher(cfg config.AppConfig, lg *zap.Logger) Publisher {
	if cfg.RabbitMQURL == "" {
		return NopPublisher{}
	}
	p, err := NewAMQPPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, lg)
	if err != nil {
		lg.Warn("rabbitmq unavailable, events disabled", zap.Error(err))
		return NopPublisher{}
	}
	return p
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NopPublisher) Close() error                                       { return nil }

// AMQPPublisher publishes persistent JSON messages to a durable topic exchange.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	lg       *zap.Logger
}

func NewAMQPPublisher(url, exchange string, lg *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange, lg: lg}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, data interface{}) error {
	evt := Event{ID: uuid.NewString(), Type: routingKey, OccurredAt: time.Now().UTC(), Data: data}
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", routingKey, err)
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.ID,
		Timestamp:    evt.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.lg.Warn("close amqp channel", zap.Error(err))
	}
	return p.conn.Close()
}
