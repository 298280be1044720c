package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/workershub/api"
	"github.com/Domenick1991/workershub/config"
	directoryapi "github.com/Domenick1991/workershub/internal/api/directory_service_api"
	"github.com/Domenick1991/workershub/internal/bootstrap"
	"github.com/Domenick1991/workershub/internal/cache"
	"github.com/Domenick1991/workershub/internal/database"
	"github.com/Domenick1991/workershub/internal/kafka"
	"github.com/Domenick1991/workershub/internal/logger"
	"github.com/Domenick1991/workershub/internal/repository"
	"github.com/Domenick1991/workershub/internal/service/booking"
	"github.com/Domenick1991/workershub/internal/service/stats"
	"github.com/Domenick1991/workershub/internal/service/workers"
	"github.com/gin-gonic/gin"
)

// @title WorkersHub API
// @version 1.0
// @description Directory of domestic workers and their booking requests.
// @BasePath /api
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
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		n, err := database.Migrate(pool)
		if err != nil {
			logger.Logger().Fatal().Err(err).Msg("apply migrations")
		}
		logger.InfoLog(ctx, "applied %d migrations", n)
	}

	var bookingOpts []booking.BookingServiceOption
	if cfg.Redis.Addr != "" {
		locker := cache.NewRedisLocker(cfg.Redis)
		defer locker.Close()
		if err := locker.Ping(ctx); err != nil {
			logger.WarnLog(ctx, "redis unavailable, booking lock disabled: %v", err)
		} else {
			bookingOpts = append(bookingOpts, booking.WithLocker(locker, time.Duration(cfg.Booking.LockTTLSeconds)*time.Second))
		}
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic))
	}

	workerRepo := repository.NewWorkerRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	workerService := workers.NewWorkerService(workerRepo)
	bookingService := booking.NewBookingService(bookingRepo, bookingOpts...)
	statsService := stats.NewStatsService(statsRepo)

	router := api.NewRouter(cfg, pool, api.Handlers{
		Workers:  api.NewWorkerHandler(workerService, cfg.Media.BaseURL),
		Bookings: api.NewBookingHandler(bookingService),
		Stats:    api.NewStatsHandler(statsService),
	})
	directory := directoryapi.NewServer(workerService, statsService, cfg.Media.BaseURL)

	if err := bootstrap.Run(ctx, cfg, router, directory); err != nil {
		logger.Logger().Fatal().Err(err).Msg("server error")
	}
}
