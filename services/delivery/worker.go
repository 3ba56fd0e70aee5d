package delivery

import (
	"context"
	"encoding/json"
	"fmt"

	"wayplan/config"
	"wayplan/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// queueRedisOpt builds the asynq Redis connection from app config.
func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewQueueClient returns the asynq client used by handlers to enqueue
// delivery tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(queueRedisOpt())
}

// StartDeliveryWorker runs the asynq worker in the background. Retries of
// failed sends are left to asynq's own retry mechanism.
func StartDeliveryWorker(sender EmailSender, logger *zap.Logger) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSendItinerary, handleDeliveryTask(sender, logger))

	go func() {
		logger.Info("starting itinerary delivery worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("delivery worker stopped", zap.Error(err))
		}
	}()
}

func handleDeliveryTask(sender EmailSender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.DeliveryPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("decode delivery payload: %w", err)
		}

		if err := sender.SendItinerary(ctx, payload.Recipient, payload.Document); err != nil {
			logger.Error("itinerary delivery failed",
				zap.String("recipient", payload.Recipient),
				zap.String("itinerary", payload.Document.ID),
				zap.Error(err))
			return err
		}

		logger.Info("itinerary delivered",
			zap.String("recipient", payload.Recipient),
			zap.String("itinerary", payload.Document.ID))
		return nil
	}
}
