package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a request to remove a dish from the menu.
// Deletion is refused while placed orders still reference the dish.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole  user.Role
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete a menu item.
func NewDeleteMenuItemCommand(actorRole user.Role, menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	menuCommand := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuCommand.setActorRole(actorRole),
		menuCommand.setMenuItemID(menuItemID),
	); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return menuCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// ActorRole returns the role of the user requesting the deletion.
func (c DeleteMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

// MenuItemID returns the identifier of the menu item to delete.
func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c *DeleteMenuItemCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *DeleteMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}
