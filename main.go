// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"bioskop-ticket/cmd"
	"bioskop-ticket/internal/cache"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/event"
	"bioskop-ticket/internal/wire"
	"bioskop-ticket/pkg/clock"
	"bioskop-ticket/pkg/database"
	"bioskop-ticket/pkg/database/migrations"
	"bioskop-ticket/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	logger.Info("Database connected and migrated")

	// Redis & RabbitMQ opsional, tanpa keduanya aplikasi tetap jalan
	redisClient := cache.NewRedisClient(config.Redis, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}
	seatCache := cache.NewSeatCache(redisClient, config.Redis.SeatCacheTTL, logger)

	publisher := event.NewPublisher(config.RabbitMQ, logger)
	defer publisher.Close()

	app := wire.Wiring(wire.Deps{
		Repo:      repository.NewRepository(db, logger),
		SeatCache: seatCache,
		Publisher: publisher,
		Clock:     clock.NewSystem(),
	}, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
