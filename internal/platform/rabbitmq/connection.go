// Package rabbitmq wires a singleton connection and channel for
// publishing deletion events.
package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection is a hub for a singleton rabbitmq channel.
type Connection struct {
	URI       string
	conn      *amqp.Connection
	channel   *amqp.Channel
	connected bool
}

// Connect dials the broker and opens a channel.
func (c *Connection) Connect(ctx context.Context) error {
	conn, err := amqp.Dial(c.URI)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}

	c.conn = conn
	c.channel = ch
	c.connected = true

	return nil
}

// Channel returns the shared channel, connecting lazily on first call.
func (c *Connection) Channel(ctx context.Context) (*amqp.Channel, error) {
	if !c.connected {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}

	return c.channel, nil
}

// Close tears down the channel and connection.
func (c *Connection) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}

	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}
