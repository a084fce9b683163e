// Package redis wires the connection to the read-through product cache.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Connection is a hub for a singleton redis client.
type Connection struct {
	Host      string
	Port      string
	Password  string
	DB        int
	client    *redis.Client
	connected bool
}

// Connect opens the client and verifies connectivity.
func (c *Connection) Connect(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Password: c.Password,
		DB:       c.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	c.client = client
	c.connected = true

	return nil
}

// Client returns the shared client, connecting lazily if this is the
// first call.
func (c *Connection) Client(ctx context.Context) (*redis.Client, error) {
	if !c.connected {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}

	return c.client, nil
}
