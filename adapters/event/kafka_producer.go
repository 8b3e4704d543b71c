package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/trannb/jobtrackr/internal/config"
	"github.com/trannb/jobtrackr/pkg/logger"
)

const (
	TopicApplicationEvents = "application.events"
	TopicUserEvents        = "user.events"
)

// Application event types.
const (
	ApplicationCreated = "application.created"
	ApplicationUpdated = "application.updated"
	ApplicationDeleted = "application.deleted"
)

// User event types.
const (
	UserRegistered         = "user.registered"
	PasswordResetRequested = "user.password_reset_requested"
)

type ApplicationEventPayload struct {
	EventType     string    `json:"event_type"`
	ApplicationID uuid.UUID `json:"application_id"`
	UserID        uuid.UUID `json:"user_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type UserEventPayload struct {
	EventType  string    `json:"event_type"`
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	ResetToken string    `json:"reset_token,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ApplicationEventsWriter *kafka.Writer
	UserEventsWriter        *kafka.Writer
	logger                  logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'application.events'
	applicationWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicApplicationEvents,
		Balancer: &kafka.LeastBytes{},
	}

	// writer 'user.events'
	userWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicUserEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{
		ApplicationEventsWriter: applicationWriter,
		UserEventsWriter:        userWriter,
		logger:                  log,
	}, nil
}

func (c *KafkaProducerClient) PublishApplicationEvent(ctx context.Context, payload ApplicationEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal application event: %w", err)
	}
	return c.ApplicationEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ApplicationID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishUserEvent(ctx context.Context, payload UserEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal user event: %w", err)
	}
	return c.UserEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.UserID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ApplicationEventsWriter != nil {
		c.ApplicationEventsWriter.Close()
	}
	if c.UserEventsWriter != nil {
		c.UserEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
