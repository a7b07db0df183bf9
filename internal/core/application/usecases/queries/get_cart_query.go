// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs shaped for their callers, bypassing the aggregate layer.
package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the contents of the caller's cart.
// A user who has not added anything yet sees an empty cart; the cart row
// itself is created lazily by the first addition.
//
// Example:
//
//	query, err := NewGetCartQuery(userID)
//	if err != nil {
//	    return err
//	}
//
//	cart, err := NewGetCartQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load cart: %w", err)
//	}
//	fmt.Printf("%d lines, total %s\n", len(cart.Items), cart.Total)
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a user's cart contents.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (q GetCartQuery) UserID() kernel.UUID {
	return q.userID
}

// CartItemResponse is one cart line with its menu item title resolved.
type CartItemResponse struct {
	ID            kernel.UUID
	MenuItemID    kernel.UUID
	MenuItemTitle string
	Quantity      int
	UnitPrice     kernel.Money
	Price         kernel.Money
}

// GetCartQueryResponse is the full cart view: lines plus the running total.
type GetCartQueryResponse struct {
	Items []CartItemResponse
	Total kernel.Money
}
