// Package mongo wires a singleton mongo-driver client for the metadata
// sidecar store.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connection is a hub for the metadata store's mongo connection.
type Connection struct {
	ConnectionStringSource string
	Database               string
	client                 *mongo.Client
	connected              bool
}

// Connect opens and pings the client.
func (c *Connection) Connect(ctx context.Context) error {
	clientOpts := options.Client().ApplyURI(c.ConnectionStringSource)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}

	c.client = client
	c.connected = true

	return nil
}

// Client returns the connected client, connecting lazily on first call.
func (c *Connection) Client(ctx context.Context) (*mongo.Client, error) {
	if !c.connected {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}

	return c.client, nil
}
