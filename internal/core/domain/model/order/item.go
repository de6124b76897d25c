package order

import (
	"errors"
	"fmt"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line on an order: a named product with a unit price, a positive
// quantity, and optional kitchen notes. Items belong to exactly one order
// and are removed with it.
type Item struct {
	id       kernel.UUID
	name     string
	price    float64
	quantity int
	notes    *string

	isConstructed bool
}

// NewItem creates a validated order item. The name must be non-empty, the
// unit price non-negative, and the quantity positive.
func NewItem(id kernel.UUID, name string, price float64, quantity int, notes *string) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.notes = notes
	return item, nil
}

// RestoreItem reconstructs an item from persistence. It applies the same
// validation as NewItem.
func RestoreItem(id kernel.UUID, name string, price float64, quantity int, notes *string) (Item, error) {
	return NewItem(id, name, price, quantity, notes)
}

// Validate ensures the Item was created through a factory function.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Notes returns the optional kitchen notes, or nil.
func (i Item) Notes() *string {
	return i.notes
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price is invalid",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
