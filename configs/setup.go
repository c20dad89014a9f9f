package configs

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens a MongoDB client for cfg.DatabaseURL and verifies it with
// a ping, retrying with a linear backoff up to cfg.MongoConnectRetries times.
func ConnectDB(ctx context.Context, cfg *Config) (*mongo.Client, error) {
	logger := LogWithContext("database", "mongodb-connect")

	retries := cfg.MongoConnectRetries
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		client, err := connectOnce(ctx, cfg.DatabaseURL)
		if err == nil {
			logger.WithField("database", cfg.MongoDatabaseName()).Info("Connected to MongoDB successfully")
			return client, nil
		}
		lastErr = err
		logger.WithError(err).WithField("attempt", i+1).Warn("MongoDB connection attempt failed")

		if i < retries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(i+1) * time.Second):
			}
		}
	}
	return nil, fmt.Errorf("failed to connect after %d retries: %w", retries, lastErr)
}

func connectOnce(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}
