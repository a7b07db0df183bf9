package catalog

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem or RestoreMenuItem factory methods.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem constructor")

// menuItemPriceFloor is the minimum price a menu item may carry.
var menuItemPriceFloor = func() kernel.Money {
	floor, err := kernel.MoneyFromString("2.00")
	if err != nil {
		panic(err)
	}
	return floor
}()

// MenuItem is a sellable catalog entry owned by managers. Cart and order line
// items snapshot its price at add/checkout time, so later price edits never
// rewrite history.
//
// MenuItem follows these invariants:
//   - Must have a valid unique identifier and a globally unique title
//   - Price is at least 2.00
//   - Inventory is never negative
//   - Always references an existing category
type MenuItem struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	inventory  int
	categoryID kernel.UUID

	isConstructed bool
}

// NewMenuItem creates a MenuItem with validated attributes.
// Title uniqueness is a catalog-wide rule enforced at the persistence layer.
func NewMenuItem(
	id kernel.UUID, title string, price kernel.Money, inventory int, categoryID kernel.UUID,
) (*MenuItem, error) {
	item := &MenuItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setPrice(price),
		item.setInventory(inventory),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persisted state.
func RestoreMenuItem(
	id kernel.UUID, title string, price kernel.Money, inventory int, categoryID kernel.UUID,
) (*MenuItem, error) {
	return NewMenuItem(id, title, price, inventory, categoryID)
}

// Validate ensures the MenuItem was properly constructed through a factory method.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Title returns the globally unique display title.
func (m *MenuItem) Title() string {
	return m.title
}

// Price returns the current catalog price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Inventory returns the current stock count.
func (m *MenuItem) Inventory() int {
	return m.inventory
}

// CategoryID returns the identifier of the owning category.
func (m *MenuItem) CategoryID() kernel.UUID {
	return m.categoryID
}

// ChangeTitle renames the item. The new title must be non-empty.
func (m *MenuItem) ChangeTitle(title string) error {
	return m.setTitle(title)
}

// ChangePrice updates the catalog price. Existing cart and order line items
// keep their snapshots.
func (m *MenuItem) ChangePrice(price kernel.Money) error {
	return m.setPrice(price)
}

// ChangeInventory updates the stock count. The count must not be negative.
func (m *MenuItem) ChangeInventory(inventory int) error {
	return m.setInventory(inventory)
}

// ChangeCategory moves the item to another category.
func (m *MenuItem) ChangeCategory(categoryID kernel.UUID) error {
	return m.setCategoryID(categoryID)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	m.title = title
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.GreaterThanOrEqual(menuItemPriceFloor) {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is below the minimum price of %s", price, menuItemPriceFloor))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setInventory(inventory int) error {
	if inventory < 0 {
		return errs.NewValueIsInvalidErrorWithCause("inventory",
			fmt.Errorf("%d is negative", inventory))
	}
	m.inventory = inventory
	return nil
}

func (m *MenuItem) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	m.categoryID = categoryID
	return nil
}
