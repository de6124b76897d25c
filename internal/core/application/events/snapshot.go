package events

import (
	"time"

	"orderboard/internal/core/domain/model/order"
)

// ItemSnapshot is the wire representation of a single order item.
type ItemSnapshot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes"`
}

// OrderSnapshot is the full wire representation of an order at a point in
// time. The same shape serves broadcast payloads and HTTP snapshot pulls,
// so an observer sees byte-identical data on either path. Timestamps are
// RFC3339 in UTC; processingTime is null until the order is confirmed.
type OrderSnapshot struct {
	ID             string         `json:"id"`
	OrderCode      string         `json:"orderCode"`
	Customer       string         `json:"customer"`
	CustomerName   string         `json:"customerName"`
	TableNumber    *int           `json:"tableNumber"`
	OrderType      string         `json:"orderType"`
	Status         string         `json:"status"`
	Total          float64        `json:"total"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
	ProcessingTime *string        `json:"processingTime"`
	Items          []ItemSnapshot `json:"items"`
}

// SnapshotFromOrder captures the full state of an order.
func SnapshotFromOrder(o *order.Order) OrderSnapshot {
	items := make([]ItemSnapshot, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemSnapshot{
			ID:       item.ID().String(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Notes:    item.Notes(),
		})
	}

	var processingTime *string
	if pt := o.ProcessingTime(); pt != nil {
		s := pt.String()
		processingTime = &s
	}

	return OrderSnapshot{
		ID:             o.ID().String(),
		OrderCode:      o.OrderCode(),
		Customer:       o.Customer(),
		CustomerName:   o.CustomerName(),
		TableNumber:    o.TableNumber(),
		OrderType:      o.OrderType(),
		Status:         o.Status().String(),
		Total:          o.Total(),
		CreatedAt:      o.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:      o.UpdatedAt().UTC().Format(time.RFC3339),
		ProcessingTime: processingTime,
		Items:          items,
	}
}
