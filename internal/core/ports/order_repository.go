package ports

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write only applies if the stored row is still in expected status;
	// a concurrent transition makes it fail with a version error so that
	// exactly one of two racing transitions wins.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// ordered by creation time ascending.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete removes an order and its items from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteItem removes a single item row belonging to the given order.
	DeleteItem(ctx context.Context, orderID kernel.UUID, itemID kernel.UUID) error

	// DeleteServedBefore removes served orders whose last update is older
	// than the cutoff. Returns the number of orders removed.
	DeleteServedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
