package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds the initial handshake and every catalog query.
const defaultTimeout = 10 * time.Second

// Config holds the connection settings for the product catalog database.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials the catalog database and confirms it is reachable before
// the server starts taking traffic. The returned client owns the
// connection pool; callers disconnect it on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI).SetAppName("creator-studio"))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to catalog db: %w", err)
	}

	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("pinging catalog db: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
