package events

// Type discriminates the event envelopes published to observers.
type Type string

const (
	TypeNewOrder     Type = "new_order"
	TypeStatusUpdate Type = "status_update"
	TypeOrderRemoved Type = "order_removed"
	TypeClear        Type = "clear"
)

// Event is the envelope written to every connected observer. Exactly one
// payload field is populated, depending on Type; the others marshal away.
type Event struct {
	Type    Type            `json:"type"`
	Order   *OrderSnapshot  `json:"order,omitempty"`
	OrderID string          `json:"orderId,omitempty"`
	Orders  []OrderSnapshot `json:"orders,omitempty"`
}

// NewOrderCreated builds the new_order envelope announcing an order that
// just entered the queue.
func NewOrderCreated(snapshot OrderSnapshot) Event {
	return Event{Type: TypeNewOrder, Order: &snapshot}
}

// NewStatusUpdated builds the status_update envelope carrying the refreshed
// snapshot after any order mutation.
func NewStatusUpdated(snapshot OrderSnapshot) Event {
	return Event{Type: TypeStatusUpdate, Order: &snapshot}
}

// NewOrderRemoved builds the order_removed envelope. Only the id travels;
// consumers drop the order from their local view by id.
func NewOrderRemoved(orderID string) Event {
	return Event{Type: TypeOrderRemoved, OrderID: orderID}
}

// NewQueueCleared builds the clear envelope carrying the final snapshots of
// every order that was bulk-confirmed. The list may be empty when the
// pending queue already was.
func NewQueueCleared(snapshots []OrderSnapshot) Event {
	return Event{Type: TypeClear, Orders: snapshots}
}
