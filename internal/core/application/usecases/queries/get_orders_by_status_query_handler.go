package queries

import (
	"context"

	"orderboard/internal/core/application/events"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler reads order snapshots straight from the
// database. Results come back oldest first, matching the order in which the
// kitchen should work the queue.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order queries. Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns full snapshots including items,
// sorted by creation time ascending.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]events.OrderSnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshots, err := scanOrderRows(h.db, ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, int(query.Status()))
	if err != nil {
		return nil, err
	}

	if err = attachItems(h.db, ctx, snapshots); err != nil {
		return nil, err
	}

	return snapshots, nil
}
