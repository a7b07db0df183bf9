package cart

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem or RestoreItem constructor")

// Item is a single cart line: a menu item reference, a quantity and the unit
// price snapshotted when the line was first added. The line total always
// satisfies price == unit_price × quantity; every mutation recomputes it.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money

	isConstructed bool
}

// NewItem creates a cart line with the given unit price snapshot.
// The line total is computed from the snapshot and quantity.
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

	item.price = item.unitPrice.MulQuantity(item.quantity)
	return item, nil
}

// RestoreItem reconstructs a cart line from persisted state.
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

// Validate ensures the Item was properly constructed through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item's identifier.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the accumulated quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot taken when the line was first added.
// Repeat adds of the same menu item never refresh it.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Price returns the line total, unit price × quantity.
func (i *Item) Price() kernel.Money {
	return i.price
}

// accumulate increases the quantity and recomputes the line total from the
// original unit price snapshot.
func (i *Item) accumulate(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.quantity += quantity
	i.price = i.unitPrice.MulQuantity(i.quantity)
	return nil
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
