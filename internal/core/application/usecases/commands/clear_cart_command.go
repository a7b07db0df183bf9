package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty the caller's cart.
// Clearing a cart that is already empty, or was never created, succeeds.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty a user's cart.
func NewClearCartCommand(userID kernel.UUID) (ClearCartCommand, error) {
	cartCommand := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cartCommand.setUserID(userID); err != nil {
		return ClearCartCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c ClearCartCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *ClearCartCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
