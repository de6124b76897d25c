package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"orderboard/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ExportOrdersQueryHandler renders the day's confirmed orders as CSV.
// The window filters on updated_at, so an order created before midnight but
// confirmed today still shows up in today's sales. Items collapse into a
// single cell, one "name xN" entry per item.
type ExportOrdersQueryHandler struct {
	db *gorm.DB
}

// NewExportOrdersQueryHandler creates a handler for CSV exports.
func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{db: db}
}

// Handle executes the export. The returned bytes always start with the
// header row, even when no orders were confirmed that day.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from := query.Day()
	to := from.Add(24 * time.Hour)

	snapshots, err := scanOrderRows(h.db, ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? AND updated_at >= ? AND updated_at < ?
		ORDER BY created_at
	`, int(order.Confirmed), from, to)
	if err != nil {
		return nil, err
	}

	if err = attachItems(h.db, ctx, snapshots); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"Order Code", "Customer Name", "Total", "Status", "Created At", "Updated At", "Processing Time", "Items",
	}
	if err = writer.Write(header); err != nil {
		return nil, err
	}

	for _, snapshot := range snapshots {
		processingTime := ""
		if snapshot.ProcessingTime != nil {
			processingTime = *snapshot.ProcessingTime
		}

		itemCells := make([]string, 0, len(snapshot.Items))
		for _, item := range snapshot.Items {
			itemCells = append(itemCells, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
		}

		record := []string{
			snapshot.OrderCode,
			snapshot.CustomerName,
			fmt.Sprintf("%.2f", snapshot.Total),
			snapshot.Status,
			snapshot.CreatedAt,
			snapshot.UpdatedAt,
			processingTime,
			strings.Join(itemCells, "; "),
		}
		if err = writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
