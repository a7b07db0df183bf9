package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to delete a single line item
// from the caller's cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	cartItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove one cart line.
// Validates that both identifiers are valid.
func NewRemoveCartItemCommand(userID, cartItemID kernel.UUID) (RemoveCartItemCommand, error) {
	cartCommand := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setUserID(userID),
		cartCommand.setCartItemID(cartItemID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c RemoveCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// CartItemID returns the identifier of the cart line to remove.
func (c RemoveCartItemCommand) CartItemID() kernel.UUID {
	return c.cartItemID
}

func (c *RemoveCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RemoveCartItemCommand) setCartItemID(cartItemID kernel.UUID) error {
	if err := cartItemID.Validate(); err != nil {
		return err
	}

	c.cartItemID = cartItemID
	return nil
}
