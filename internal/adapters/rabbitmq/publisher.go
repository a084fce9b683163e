// Package rabbitmq publishes deletion events for downstream consumers
// (audit trails, search-index eviction, notification fan-out). It
// satisfies internal/deletion.Publisher.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/platform/logging"
	platformrabbitmq "github.com/catalogsvc/catalog/internal/platform/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "catalog.deletions"
	routingKey   = "deletion.event"
)

// EventPublisher publishes deletion.Event values to the
// "catalog.deletions" topic exchange. Publication is best-effort: a
// failure is logged and swallowed, never returned to the caller that
// triggered the deletion.
type EventPublisher struct {
	conn *platformrabbitmq.Connection
}

// NewEventPublisher builds an EventPublisher bound to conn.
func NewEventPublisher(conn *platformrabbitmq.Connection) *EventPublisher {
	return &EventPublisher{conn: conn}
}

type eventPayload struct {
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publish declares the exchange (idempotent) and publishes event. Any
// failure is logged at warn and swallowed: a broker outage must never
// fail the deletion that triggered the event.
func (p *EventPublisher) Publish(ctx context.Context, event deletion.Event) error {
	logger := logging.FromContext(ctx)

	channel, err := p.conn.Channel(ctx)
	if err != nil {
		logger.Warnf("deletion event publish skipped, rabbitmq unavailable: %v", err)
		return nil
	}

	if err := channel.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		logger.Warnf("deletion event publish skipped, exchange declare failed: %v", err)
		return nil
	}

	body, err := json.Marshal(eventPayload{
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Kind:       string(event.Kind),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		logger.Warnf("deletion event publish skipped, marshal failed: %v", err)
		return nil
	}

	err = channel.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		logger.Warnf("deletion event publish failed for %s %s: %v", event.EntityType, event.EntityID, err)
		return nil
	}

	logger.Debugf("published deletion event for %s %s (%s)", event.EntityType, event.EntityID, event.Kind)

	return nil
}
