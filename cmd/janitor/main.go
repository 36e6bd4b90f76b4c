package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/classifieds/cmd/config"
	"github.com/muhammadheryan/classifieds/thirdparty/rabbitmq"
	"github.com/muhammadheryan/classifieds/utils/logger"
	"go.uber.org/zap"
)

// janitor retries removal of image files the API could not delete in-request.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.RabbitMQ.Host == "" {
		logger.Fatal("RABBITMQ_HOST is required")
	}
	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey, cfg.RabbitMQ.RetryDelay, cfg.RabbitMQ.MaxAttempts)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("image janitor running", zap.String("api_url", cfg.Internal.APIURL))

	<-ctx.Done()
	logger.Info("image janitor stopped")
}
