// Package queue carries catalog change events over RabbitMQ. Handlers
// publish an event after every successful suite or amenity mutation;
// downstream consumers (search indexers, cache invalidators, the bundled
// log consumer) pick them up from the durable catalog.events queue.
package queue

import "time"

// QueueName is the durable queue catalog events are published to.
const QueueName = "catalog.events"

// Entity kinds carried in events.
const (
	EntitySuite   = "suite"
	EntityAmenity = "amenity"
)

// Actions carried in events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CatalogEvent describes one mutation of a catalog entity.
type CatalogEvent struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}
