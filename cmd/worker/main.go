package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/trannb/jobtrackr/adapters/event"
	"github.com/trannb/jobtrackr/adapters/persistence"
	auditUC "github.com/trannb/jobtrackr/internal/application/usecase/audit"
	"github.com/trannb/jobtrackr/internal/config"
	"github.com/trannb/jobtrackr/pkg/logger"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting JobTrackr Worker...")

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Repositories
	auditRepo := persistence.NewPostgresAuditRepo(dbPool, appLogger)

	// Worker Use Case
	processEventUC := auditUC.NewProcessEventUseCase(auditRepo, appLogger)

	ctx := context.Background()

	go consumeApplicationEvents(ctx, cfg, processEventUC, appLogger)
	consumeUserEvents(ctx, cfg, processEventUC, appLogger)
}

func consumeApplicationEvents(ctx context.Context, cfg config.Config, uc *auditUC.ProcessEventUseCase, log logger.Logger) {
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicApplicationEvents,
		GroupID:  "audit-trail-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Info("Worker listening on topic '" + event.TopicApplicationEvents + "'...")

	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.ApplicationEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("Failed to unmarshal application event. Skipping.", err)
			commitMessage(consumer, msg, log)
			continue
		}

		if err := uc.ProcessApplicationEvent(ctx, payload); err != nil {
			log.Error("Failed to process application event", err,
				zap.String("application_id", payload.ApplicationID.String()))
			continue
		}

		commitMessage(consumer, msg, log)
	}
}

func consumeUserEvents(ctx context.Context, cfg config.Config, uc *auditUC.ProcessEventUseCase, log logger.Logger) {
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicUserEvents,
		GroupID:  "audit-trail-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Info("Worker listening on topic '" + event.TopicUserEvents + "'...")

	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.UserEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("Failed to unmarshal user event. Skipping.", err)
			commitMessage(consumer, msg, log)
			continue
		}

		if err := uc.ProcessUserEvent(ctx, payload); err != nil {
			log.Error("Failed to process user event", err,
				zap.String("user_id", payload.UserID.String()))
			continue
		}

		commitMessage(consumer, msg, log)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
