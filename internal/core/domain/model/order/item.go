package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem or RestoreItem constructor")

// Item is an immutable order line copied from the cart at checkout. It keeps
// the menu item reference, the quantity and the prices exactly as they were
// when the order was placed, so later catalog changes never affect placed
// orders.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money

	isConstructed bool
}

// NewItem creates an order line with validation.
//
// The line total is computed from the unit price and quantity rather than
// accepted from the caller, which keeps the price invariant by construction.
func NewItem(id, menuItemID kernel.UUID, unitPrice kernel.Money, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.price = unitPrice.MulQuantity(quantity)
	return item, nil
}

// RestoreItem reconstructs an order line from persisted state.
// The stored line total must match unit_price × quantity.
func RestoreItem(id, menuItemID kernel.UUID, unitPrice kernel.Money, quantity int, price kernel.Money) (*Item, error) {
	item, err := NewItem(id, menuItemID, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	if !item.price.IsEqual(price) {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s does not equal %s x %d", price, unitPrice, quantity))
	}

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the order line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item's identifier.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshotted at checkout.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Price returns the line total.
func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
