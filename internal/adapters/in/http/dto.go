package http

import (
	"time"

	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the POST /orders payload. The total field is
// accepted for compatibility with older clients but ignored; the server
// always computes the total from the item lines. CreatedAt is optional
// RFC3339 and backdates replayed submissions; omitted means "now".
type CreateOrderRequest struct {
	Customer     string                   `json:"customer"`
	CustomerName string                   `json:"customerName"`
	TableNumber  *int                     `json:"tableNumber"`
	OrderType    string                   `json:"orderType"`
	OrderCode    string                   `json:"orderCode"`
	Total        *float64                 `json:"total"`
	CreatedAt    *string                  `json:"createdAt"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// createdAtTime parses the optional creation timestamp. The zero time
// stands for "not supplied".
func (r CreateOrderRequest) createdAtTime() (time.Time, error) {
	if r.CreatedAt == nil {
		return time.Time{}, nil
	}

	createdAt, err := time.Parse(time.RFC3339, *r.CreatedAt)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("createdAt", err)
	}
	return createdAt, nil
}

// CreateOrderItemRequest is one item line of a new order. Clients disagree
// on field names, so price/unitPrice and quantity/qty are both accepted;
// when both spellings arrive, the canonical one wins.
type CreateOrderItemRequest struct {
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
	UnitPrice *float64 `json:"unitPrice"`
	Quantity  *int     `json:"quantity"`
	Qty       *int     `json:"qty"`
	Notes     *string  `json:"notes"`
}

// normalize resolves the alias fields into a command item.
func (r CreateOrderItemRequest) normalize() (commands.CreateOrderItem, error) {
	item := commands.CreateOrderItem{
		Name:  r.Name,
		Notes: r.Notes,
	}

	switch {
	case r.Price != nil:
		item.Price = *r.Price
	case r.UnitPrice != nil:
		item.Price = *r.UnitPrice
	default:
		return commands.CreateOrderItem{}, errs.NewValueIsRequiredError("item price")
	}

	switch {
	case r.Quantity != nil:
		item.Quantity = *r.Quantity
	case r.Qty != nil:
		item.Quantity = *r.Qty
	default:
		return commands.CreateOrderItem{}, errs.NewValueIsRequiredError("item quantity")
	}

	return item, nil
}

// UpdateOrderRequest is the PATCH /orders/:id payload. Exactly one of
// status or itemId must be present: status advances the order, itemId
// strikes an item from it.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
	ItemID *string `json:"itemId"`
}
