package ports

import (
	"orderboard/internal/core/application/events"
)

// EventPublisher delivers events to connected observers.
// Publish must never block the caller: delivery to slow observers is the
// publisher's problem, not the command handler's. Handlers call Publish
// only after the transaction that produced the event has committed.
type EventPublisher interface {
	Publish(event events.Event)
}
