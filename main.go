package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact-service/configs"
	"contact-service/controllers"
	"contact-service/metrics"
	"contact-service/notify"
	"contact-service/routes"
	"contact-service/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		configs.LogWithContext("contact-service", "startup").WithError(err).Fatal("Failed to load configuration")
	}

	configs.InitLogger(cfg)
	logger := configs.LogWithContext("contact-service", "startup")

	logger.Info("Starting contact-service initialization")

	ctx := context.Background()

	st, closeStore, err := initializeStore(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize store")
	}
	defer closeStore()

	notifier, closeNotifier := initializeNotifier(ctx, cfg, logger)
	defer closeNotifier()

	m := metrics.New(prometheus.DefaultRegisterer)

	handler := controllers.NewHandler(controllers.Deps{
		Store:        st,
		Notifier:     notifier,
		Metrics:      m,
		Logger:       configs.LogWithContext("contact-service", "controllers"),
		StoreTimeout: cfg.StoreTimeout,
		Diagnostics: controllers.DiagnosticsConfig{
			DatabaseURLSet:  cfg.DatabaseURL != "",
			DatabaseNameSet: cfg.DatabaseName != "",
			ListCollections: cfg.DiagnosticsListCollections,
		},
	})

	router := routes.NewRouter(handler, routes.Options{
		Logger:          configs.LogWithContext("contact-service", "http"),
		Metrics:         m,
		Gatherer:        prometheus.DefaultGatherer,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		SubmitRateLimit: cfg.SubmitRateLimit,
		SubmitRateBurst: cfg.SubmitRateBurst,
		TrustProxy:      cfg.TrustProxy,
	})
	logger.Info("Routes registered")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("contact-service started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	} else {
		logger.Info("Server shutdown complete")
	}
}

// initializeStore connects to MongoDB when DATABASE_URL is set and falls
// back to the in-memory store otherwise.
func initializeStore(ctx context.Context, cfg *configs.Config, logger *logrus.Entry) (store.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, submissions will be kept in memory only")
		return store.NewMemoryStore(cfg.MongoDatabaseName()), func() {}, nil
	}

	start := time.Now()
	client, err := configs.ConnectDB(ctx, cfg)
	if err != nil {
		logger.WithError(err).WithField("duration", time.Since(start)).Error("MongoDB connection failed")
		return nil, nil, err
	}
	logger.WithField("duration", time.Since(start)).Info("MongoDB connected successfully")

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.WithError(err).Warn("MongoDB disconnect failed")
		}
	}
	return store.NewMongoStore(client.Database(cfg.MongoDatabaseName())), closeFn, nil
}

// initializeNotifier wires Redis notifications when REDIS_URL is set. A
// Redis outage at startup only disables notifications.
func initializeNotifier(ctx context.Context, cfg *configs.Config, logger *logrus.Entry) (notify.Publisher, func()) {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, submission notifications disabled")
		return nil, func() {}
	}

	start := time.Now()
	client, err := configs.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		logger.WithError(err).Warn("Redis connection failed, submission notifications disabled")
		return nil, func() {}
	}
	logger.WithFields(logrus.Fields{
		"duration": time.Since(start),
		"channel":  cfg.NotificationChannel,
	}).Info("Redis connected successfully")

	return notify.NewRedisPublisher(client, cfg.NotificationChannel), func() { _ = client.Close() }
}
