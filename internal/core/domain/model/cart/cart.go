package cart

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart is the per-customer scratch area accumulating line items before
// checkout. It is the aggregate root for its items: lines are added, removed
// and cleared only through the cart, which keeps the price invariant intact.
//
// Cart follows these invariants:
//   - Exactly one cart per user, created lazily on first interaction
//   - At most one line per menu item; repeat adds accumulate quantity
//   - A line's unit price is snapshotted at first add and never refreshed
//   - Every line satisfies price == unit_price × quantity
//
// The cart is transient: checkout and explicit clears delete all lines while
// the cart row itself persists.
type Cart struct {
	id     kernel.UUID
	userID kernel.UUID
	items  []*Item

	isConstructed bool
}

// NewCart creates an empty cart owned by the given user.
func NewCart(id, userID kernel.UUID) (*Cart, error) {
	return RestoreCart(id, userID, nil)
}

// RestoreCart reconstructs a cart and its lines from persisted state.
func RestoreCart(id, userID kernel.UUID, items []*Item) (*Cart, error) {
	c := &Cart{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	c.items = items

	return c, nil
}

// Validate ensures the Cart was properly constructed through a factory method.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the identifier of the owning user.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Items returns the current cart lines.
func (c *Cart) Items() []*Item {
	return c.items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total returns the sum of all line totals.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range c.items {
		total = total.Add(item.Price())
	}
	return total
}

// AddItem adds quantity units of a menu item to the cart.
//
// If the menu item is not in the cart yet, a new line is created with the
// given id and unitPrice becomes the line's price snapshot. If a line for the
// menu item already exists, its quantity accumulates and the line total is
// recomputed from the original snapshot (unitPrice is ignored in that case).
func (c *Cart) AddItem(itemID, menuItemID kernel.UUID, unitPrice kernel.Money, quantity int) error {
	for _, item := range c.items {
		if item.MenuItemID().IsEqual(menuItemID) {
			return item.accumulate(quantity)
		}
	}

	item, err := NewItem(itemID, menuItemID, unitPrice, quantity)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// RemoveItem deletes a single line by its identifier.
// Returns ObjectNotFoundError if the line does not belong to this cart.
func (c *Cart) RemoveItem(itemID kernel.UUID) error {
	for idx, item := range c.items {
		if item.ID().IsEqual(itemID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cartItemId", itemID.String())
}

// Clear deletes all lines. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
