package services

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// ErrCartIsEmpty is returned when checkout is attempted on a cart that
// contains no lines. There is nothing to turn into an order.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutService is a domain service that turns a customer's cart into
// a placed order.
//
// Key responsibilities:
//   - Validating the cart before checkout
//   - Copying the cart lines into immutable order lines
//   - Emptying the cart once the order is created
//
// Business rules:
//   - An empty cart cannot be checked out
//   - Order lines carry the prices snapshotted in the cart, not the
//     current catalog prices
//   - The order total is the sum of the copied lines
//
// Example usage:
//
//	checkout := NewCheckoutService()
//	order, err := checkout.Checkout(cart, kernel.NewUUID(), time.Now())
//	if errors.Is(err, ErrCartIsEmpty) {
//	    // Nothing to order
//	    return
//	}
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout creates an order from the cart's contents and clears the cart.
//
// Parameters:
//   - c: The customer's cart (must be valid and non-empty)
//   - orderID: Identity for the new order
//   - now: The checkout timestamp
//
// Returns:
//   - *order.Order: The placed order owned by the cart's user
//   - error: ErrCartIsEmpty for an empty cart, or validation errors
//
// The cart is cleared only after the order is successfully constructed,
// so a failed checkout leaves the cart untouched.
func (s CheckoutService) Checkout(c *cart.Cart, orderID kernel.UUID, now time.Time) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	items := make([]*order.Item, 0, len(c.Items()))
	for _, line := range c.Items() {
		item, err := order.NewItem(kernel.NewUUID(), line.MenuItemID(), line.UnitPrice(), line.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(orderID, c.UserID(), items, now)
	if err != nil {
		return nil, err
	}

	c.Clear()
	return placed, nil
}
