package queries

import (
	"context"

	"orderboard/internal/core/application/events"
	"orderboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order snapshot from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// order exists under the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (events.OrderSnapshot, error) {
	if err := query.Validate(); err != nil {
		return events.OrderSnapshot{}, err
	}

	snapshots, err := scanOrderRows(h.db, ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String())
	if err != nil {
		return events.OrderSnapshot{}, err
	}

	if len(snapshots) == 0 {
		return events.OrderSnapshot{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	if err = attachItems(h.db, ctx, snapshots); err != nil {
		return events.OrderSnapshot{}, err
	}

	return snapshots[0], nil
}
