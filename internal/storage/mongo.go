package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"ayurcare_backend/internal/logger"
)

const connectTimeout = 10 * time.Second

// Connect establishes a MongoDB client and verifies liveness with a ping.
// The returned client owns a connection pool that is safe for concurrent
// use; it is constructed once at process start and passed to the
// repositories, then released via Disconnect on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("Connected to MongoDB", "uri", uri)
	return client, nil
}

// Disconnect releases the client's connection pool.
func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Warn("Error disconnecting from MongoDB", "error", err)
	}
}
