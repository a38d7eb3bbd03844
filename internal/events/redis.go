package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dying-condition/internal/logging"
)

// DefaultChannel is the pub/sub channel attribute changes are announced on
const DefaultChannel = "character:updates"

// Publisher announces attribute changes on a Redis channel
type Publisher struct {
	client  redis.UniversalClient
	channel string
}

// NewPublisher creates a new publisher
func NewPublisher(client redis.UniversalClient, channel string) *Publisher {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{client: client, channel: channel}
}

// Publish sends the event to every subscriber of the channel
func (p *Publisher) Publish(ctx context.Context, event *AttributesChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.channel, err)
	}
	return nil
}

// Subscriber reads attribute changes from a Redis channel and emits them on a Bus.
// Messages are handled one at a time, so a character never sees two updates at once.
type Subscriber struct {
	client  redis.UniversalClient
	channel string
	bus     *Bus
	logger  *zap.Logger
}

// SubscriberConfig holds configuration for the subscriber
type SubscriberConfig struct {
	Client  redis.UniversalClient // Required
	Channel string
	Bus     *Bus // Required
	Logger  *zap.Logger
}

// NewSubscriber creates a new subscriber
func NewSubscriber(cfg *SubscriberConfig) *Subscriber {
	if cfg == nil || cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.Bus == nil {
		panic("event bus is required")
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &Subscriber{
		client:  cfg.Client,
		channel: channel,
		bus:     cfg.Bus,
		logger:  logging.OrNop(cfg.Logger).Named("events"),
	}
}

// Run consumes messages until ctx is cancelled. A message that fails to
// decode or handle is logged and skipped.
func (s *Subscriber) Run(ctx context.Context) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	// Wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}
	s.logger.Info("listening for attribute changes", zap.String("channel", s.channel))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return fmt.Errorf("subscription to %s closed", s.channel)
			}
			s.handle(ctx, msg.Payload)
		}
	}
}

func (s *Subscriber) handle(ctx context.Context, payload string) {
	var event AttributesChangedEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.logger.Error("dropping malformed event", zap.Error(err), zap.String("payload", payload))
		return
	}
	if event.CharacterID == "" {
		s.logger.Error("dropping event without character", zap.String("payload", payload))
		return
	}
	if event.Type == "" {
		event.Type = EventTypeAttributesChanged
	}

	if err := s.bus.Emit(ctx, &event); err != nil {
		s.logger.Error("event handling failed",
			zap.String("character_id", event.CharacterID),
			zap.Error(err))
	}
}
