package commands

import (
	"errors"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// CreateOrderItem carries the item details submitted with a new order.
// Item identifiers are assigned by the handler; clients never supply them.
type CreateOrderItem struct {
	Name     string
	Price    float64
	Quantity int
	Notes    *string
}

// CreateOrderCommand represents a request to place a new order into the
// pending queue. Optional presentation fields (customer, customer name,
// table number, order type, order code) fall back to defaults inside the
// aggregate; a missing customer becomes the Guest walk-up handle.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	items := []CreateOrderItem{{Name: "Rice", Price: 20, Quantity: 2}}
//	cmd, err := NewCreateOrderCommand(orderID, "walk-in", "", nil, "", "", items, time.Time{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	snapshot, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s queued", snapshot.OrderCode)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customer     string
	customerName string
	tableNumber  *int
	orderType    string
	orderCode    string
	items        []CreateOrderItem
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid and at least one item is present.
// Item fields are validated later by the aggregate so that domain rules
// live in one place. A zero createdAt means "now"; a non-zero value
// backdates the order (replayed kiosk submissions).
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer string,
	customerName string,
	tableNumber *int,
	orderType string,
	orderCode string,
	items []CreateOrderItem,
	createdAt time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customer:     customer,
		customerName: customerName,
		tableNumber:  tableNumber,
		orderType:    orderType,
		orderCode:    orderCode,
		createdAt:    createdAt,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the customer identifier the order was placed under, or
// empty to default to the Guest walk-up handle.
func (c CreateOrderCommand) Customer() string {
	return c.customer
}

// CustomerName returns the display name, or empty to default to Customer.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// TableNumber returns the table the order is for, or nil for none.
func (c CreateOrderCommand) TableNumber() *int {
	return c.tableNumber
}

// OrderType returns the requested order type, or empty to default.
func (c CreateOrderCommand) OrderType() string {
	return c.orderType
}

// OrderCode returns the caller-supplied short code, or empty to derive one.
func (c CreateOrderCommand) OrderCode() string {
	return c.orderCode
}

// Items returns the submitted order items.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

// CreatedAt returns the creation instant, or the zero time to mean "now".
func (c CreateOrderCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}
