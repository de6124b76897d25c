// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and repositories, reading rows
// straight into wire-shaped snapshots.
package queries

import (
	"context"
	"time"

	"orderboard/internal/core/application/events"
	"orderboard/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderColumns is the projection every order query reads.
const orderColumns = `
	id,
	order_code,
	customer,
	customer_name,
	table_number,
	order_type,
	status,
	total,
	created_at,
	updated_at,
	processing_time
`

// scanOrderRows reads order rows into snapshots, without items.
func scanOrderRows(db *gorm.DB, ctx context.Context, query string, args ...any) ([]events.OrderSnapshot, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]events.OrderSnapshot, 0)
	for rows.Next() {
		var (
			id             uuid.UUID
			snapshot       events.OrderSnapshot
			status         int
			createdAt      time.Time
			updatedAt      time.Time
			processingTime *string
		)

		err = rows.Scan(
			&id,
			&snapshot.OrderCode,
			&snapshot.Customer,
			&snapshot.CustomerName,
			&snapshot.TableNumber,
			&snapshot.OrderType,
			&status,
			&snapshot.Total,
			&createdAt,
			&updatedAt,
			&processingTime,
		)
		if err != nil {
			return nil, err
		}

		snapshot.ID = id.String()
		snapshot.Status = order.Status(status).String()
		snapshot.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		snapshot.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
		snapshot.ProcessingTime = processingTime
		snapshot.Items = make([]events.ItemSnapshot, 0)
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// attachItems loads the items for every snapshot in one query.
func attachItems(db *gorm.DB, ctx context.Context, snapshots []events.OrderSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	orderIDs := make([]string, 0, len(snapshots))
	index := make(map[string]int, len(snapshots))
	for i, snapshot := range snapshots {
		orderIDs = append(orderIDs, snapshot.ID)
		index[snapshot.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			name,
			price,
			quantity,
			notes
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      uuid.UUID
			orderID uuid.UUID
			item    events.ItemSnapshot
		)

		err = rows.Scan(
			&id,
			&orderID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Notes,
		)
		if err != nil {
			return err
		}

		item.ID = id.String()
		if i, ok := index[orderID.String()]; ok {
			snapshots[i].Items = append(snapshots[i].Items, item)
		}
	}

	return rows.Err()
}
