package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
)

const (
	// DefaultOrderType is assigned when the creating payload carries no order type.
	DefaultOrderType = "dine-in"

	// DefaultCustomer is assigned when the creating payload carries no
	// customer handle. Walk-up kiosk orders routinely omit it.
	DefaultCustomer = "Guest"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLastItemCannotBeRemoved is wrapped by RemoveItem when the order
	// would be left without items. Delete the order instead.
	ErrLastItemCannotBeRemoved = errors.New("the last remaining item cannot be removed")
)

// Order is the aggregate root of the point-of-sale queue. It owns its items
// exclusively and manages the lifecycle from creation (pending) through
// confirmation to being served.
//
// Order maintains these invariants:
//   - at least one item at all times
//   - total equals the sum of item subtotals at creation time
//   - status only moves forward: pending -> confirmed -> served
//   - processingTime is computed exactly once, when the order is confirmed
//   - createdAt never changes; updatedAt moves on every mutation
//
// Fields are private; all mutation goes through validated methods.
type Order struct {
	id             kernel.UUID
	orderCode      string
	customer       string
	customerName   string
	tableNumber    *int
	orderType      string
	status         Status
	total          float64
	createdAt      time.Time
	updatedAt      time.Time
	processingTime *ProcessingTime
	items          []Item

	isConstructed bool
}

// NewOrder creates a new pending order.
//
// The items slice must contain at least one valid Item; the total is always
// computed from the items (a client-supplied total never overrides the sum
// of subtotals). orderCode, customer, customerName, and orderType fall back
// to sane defaults when empty: the code is derived from the id ("#" plus
// its first six characters, stable and idempotent), the customer handle
// defaults to Guest, the display name falls back to the customer handle,
// and the type defaults to dine-in. createdAt defaults to the current time
// when zero.
func NewOrder(
	id kernel.UUID,
	customer string,
	customerName string,
	tableNumber *int,
	orderType string,
	orderCode string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.customer = customer
	if o.customer == "" {
		o.customer = DefaultCustomer
	}
	o.customerName = customerName
	if o.customerName == "" {
		o.customerName = o.customer
	}
	o.tableNumber = tableNumber

	o.orderType = orderType
	if o.orderType == "" {
		o.orderType = DefaultOrderType
	}

	o.orderCode = orderCode
	if o.orderCode == "" {
		o.orderCode = deriveOrderCode(id)
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	o.createdAt = createdAt.UTC()
	o.updatedAt = o.createdAt

	o.total = 0
	for _, item := range o.items {
		o.total += item.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored
// status, total, timestamps, and processing time. Used by repositories only.
func RestoreOrder(
	id kernel.UUID,
	customer string,
	customerName string,
	tableNumber *int,
	orderType string,
	orderCode string,
	status Status,
	total float64,
	createdAt time.Time,
	updatedAt time.Time,
	processingTime *ProcessingTime,
	items []Item,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if total < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("total is invalid",
			fmt.Errorf("%v is negative", total))
	}

	o.customer = customer
	o.customerName = customerName
	o.tableNumber = tableNumber
	o.orderType = orderType
	o.orderCode = orderCode
	o.status = status
	o.total = total
	o.createdAt = createdAt.UTC()
	o.updatedAt = updatedAt.UTC()
	o.processingTime = processingTime

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderCode returns the human-readable order code.
func (o *Order) OrderCode() string {
	return o.orderCode
}

// Customer returns the customer handle supplied at creation.
func (o *Order) Customer() string {
	return o.customer
}

// CustomerName returns the display name for the dashboard.
func (o *Order) CustomerName() string {
	return o.customerName
}

// TableNumber returns the table number, or nil for counter/kiosk orders.
func (o *Order) TableNumber() *int {
	return o.tableNumber
}

// OrderType returns the order type (dine-in, kiosk, ...).
func (o *Order) OrderType() string {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total computed at creation.
func (o *Order) Total() float64 {
	return o.total
}

// CreatedAt returns the immutable creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ProcessingTime returns the elapsed creation-to-confirmation time,
// or nil while the order is still pending.
func (o *Order) ProcessingTime() *ProcessingTime {
	return o.processingTime
}

// Items returns the order's items in their original order.
func (o *Order) Items() []Item {
	return o.items
}

// Confirm advances a pending order to confirmed and computes the processing
// time from the creation timestamp to now. The processing time is set
// exactly once; a value already present is never recomputed.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	if o.processingTime == nil {
		pt, ptErr := ProcessingTimeBetween(o.createdAt, now)
		if ptErr != nil {
			return ptErr
		}
		o.processingTime = &pt
	}

	o.status = newStatus
	o.updatedAt = now.UTC()
	return nil
}

// Serve advances a confirmed order to served, the terminal state that
// removes it from the active queue.
func (o *Order) Serve(now time.Time) error {
	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now.UTC()
	return nil
}

// ChangeStatus advances the order to next, dispatching to Confirm or Serve.
// Any edge that is not exactly one step forward fails with an
// InvalidTransitionError and leaves the order untouched.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	switch next {
	case Confirmed:
		return o.Confirm(now)
	case Served:
		return o.Serve(now)
	default:
		return NewInvalidTransitionError(o.status, next)
	}
}

// RemoveItem removes a single item (e.g. "mark item served on the pass").
// The last remaining item cannot be removed; delete the order instead.
// The stored total is deliberately not recomputed, matching the dashboard
// contract: the refreshed snapshot carries fewer items with the original
// total.
func (o *Order) RemoveItem(itemID kernel.UUID, now time.Time) (Item, error) {
	if err := itemID.Validate(); err != nil {
		return Item{}, err
	}

	idx := -1
	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Item{}, errs.NewObjectNotFoundError("itemId", itemID.String())
	}

	if len(o.items) == 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("items", ErrLastItemCannotBeRemoved)
	}

	removed := o.items[idx]
	o.items = append(o.items[:idx], o.items[idx+1:]...)
	o.updatedAt = now.UTC()
	return removed, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// deriveOrderCode builds the fallback human-readable code from the id:
// "#" plus the first six characters of its string form.
func deriveOrderCode(id kernel.UUID) string {
	s := strings.ReplaceAll(id.String(), "-", "")
	return "#" + s[:6]
}
