// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"tourism-booking/cmd"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/localstore"
	"tourism-booking/internal/notify"
	"tourism-booking/internal/subscription"
	"tourism-booking/internal/usecase"
	"tourism-booking/internal/wire"
	"tourism-booking/pkg/cache"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/kafka"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

const sessionCleanupInterval = time.Hour

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

	// Connect to database. Without one the API still serves the built-in
	// catalog and locally kept data.
	db := database.Unconfigured()
	if config.Database.Configured() {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database connected successfully")
	} else {
		logger.Warn("Database is not configured, running in fallback mode")
	}
	defer db.Close()

	// Redis backs the catalog cache and, optionally, the local store
	redisClient := cache.NewClient(config.Redis)
	var catalogCache usecase.TourCache = cache.NopCache{}
	if redisClient != nil {
		defer redisClient.Close()
		catalogCache = cache.NewRedisCache(redisClient, time.Duration(config.Redis.CatalogCacheTTL)*time.Second)
	}

	var kv localstore.KV
	if config.LocalStore.Driver == "redis" && redisClient != nil {
		kv = localstore.NewRedisKV(redisClient)
	} else {
		fileKV, err := localstore.NewFileKV(config.LocalStore.Path)
		if err != nil {
			logger.Fatal("Failed to open local store", zap.Error(err))
		}
		kv = fileKV
	}

	// Notifications go to Kafka when brokers are set
	var publisher notify.Publisher = notify.NewLogPublisher(logger)
	if len(config.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(config.Kafka.Brokers, logger)
		defer producer.Close()
		publisher = producer
	}
	notifier := notify.NewNotifier(publisher, config.Kafka.NotificationsTopic, logger)

	hub := subscription.NewHub(logger)
	repos := repository.NewRepository(db, logger)
	infra := usecase.Infra{
		Cache:   catalogCache,
		Local:   localstore.New(kv, logger, time.Now),
		Changes: hub,
		Events:  notifier,
		Now:     time.Now,
	}

	// Wire all dependencies
	app := wire.Wiring(repos, infra, hub, config, logger)

	if config.Database.Configured() {
		seeded, err := app.Service.Tour.SeedCatalog(ctx)
		if err != nil {
			logger.Warn("Failed to seed tour catalog", zap.Error(err))
		} else if seeded > 0 {
			logger.Info("Seeded tour catalog", zap.Int("tours", seeded))
		}
		go cleanSessions(ctx, repos.Session, logger)
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}

	notifier.Wait()
	logger.Info("Server stopped")
}

func cleanSessions(ctx context.Context, sessions repository.SessionRepository, logger *zap.Logger) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sessions.CleanExpiredSessions(ctx)
			if err != nil {
				logger.Warn("Failed to clean expired sessions", zap.Error(err))
				continue
			}
			if removed > 0 {
				logger.Info("Cleaned expired sessions", zap.Int64("removed", removed))
			}
		}
	}
}
