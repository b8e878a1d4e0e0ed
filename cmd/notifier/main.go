// Command notifier reads booking and custom request events from Kafka and
// emails them to the customer and the operator.
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"tourism-booking/internal/notify"
	"tourism-booking/pkg/kafka"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name+"-notifier", config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	if len(config.Kafka.Brokers) == 0 {
		logger.Fatal("KAFKA_BROKERS is required for the notifier")
	}

	adminEmail := config.Notify.AdminEmail
	if adminEmail == "" {
		adminEmail = config.Email.User
	}

	mailer := notify.NewMailer(config.Email, logger)
	if !mailer.Configured() {
		logger.Warn("SMTP is not configured, emails will be skipped")
	}
	handler := notify.NewHandler(mailer, adminEmail, logger)

	consumer := kafka.NewConsumer(config.Kafka.Brokers, config.Kafka.GroupID, config.Kafka.NotificationsTopic)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Notifier started",
		zap.Strings("brokers", config.Kafka.Brokers),
		zap.String("topic", config.Kafka.NotificationsTopic),
		zap.String("group", config.Kafka.GroupID),
	)

	err = consumer.Consume(ctx, func(ctx context.Context, _, value []byte) error {
		return handler.Handle(ctx, value)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer stopped", zap.Error(err))
		return
	}
	logger.Info("Notifier stopped")
}
