package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/workershub/config"
	"github.com/Domenick1991/workershub/internal/database"
	"github.com/Domenick1991/workershub/internal/kafka"
	"github.com/Domenick1991/workershub/internal/logger"
	"github.com/Domenick1991/workershub/internal/notify"
	"github.com/Domenick1991/workershub/internal/repository"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("load config")
	}
	logger.InitLogging(cfg.Log.Level, cfg.Log.File)

	if len(cfg.Kafka.Brokers) == 0 {
		logger.Logger().Fatal().Msg("kafka.brokers is empty, nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic)
	defer consumer.Close()

	handler := notify.NewHandler(notify.NewLogSender(), repository.NewWorkerRepository(pool), cfg.Worker.MarkBookedOnApproval)

	logger.InfoLog(ctx, "consuming %s as %s", cfg.Kafka.BookingEventsTopic, cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, handler.HandleMessage); err != nil && ctx.Err() == nil {
		logger.Logger().Fatal().Err(err).Msg("consumer stopped")
	}
	logger.InfoLog(ctx, "shutting down")
}
