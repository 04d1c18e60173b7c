package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"hris-onboarding/internal/config"
	"hris-onboarding/internal/events"
	"hris-onboarding/internal/messaging/kafka/consumer"
	"hris-onboarding/internal/shared/connection"
)

// RunConsumer starts onboarding for employee_created events until SIGINT/SIGTERM.
// It exits immediately when auto-start is disabled.
func RunConsumer(cfg *config.Configuration) error {
	logger := zap.L().Named("app.consumer")

	if !cfg.AutoStartOnboarding() {
		logger.Info("auto-start onboarding disabled, consumer not started")
		return nil
	}
	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Catalogs resolve through the in-process cache only; redis is not required here.
	svc, err := buildServices(cfg, sqlDB, gormDB, nil, zap.L())
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, reader, svc.onboarding, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
