package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a partial update of a menu item.
// Absent fields leave the item untouched.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole  user.Role
	menuItemID kernel.UUID
	title      *string
	price      *kernel.Money
	inventory  *int
	categoryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
// Only the supplied fields are validated.
func NewUpdateMenuItemCommand(
	actorRole user.Role,
	menuItemID kernel.UUID,
	title *string,
	price *kernel.Money,
	inventory *int,
	categoryID *kernel.UUID,
) (UpdateMenuItemCommand, error) {
	menuCommand := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuCommand.setActorRole(actorRole),
		menuCommand.setMenuItemID(menuItemID),
		menuCommand.setTitle(title),
		menuCommand.setPrice(price),
		menuCommand.setInventory(inventory),
		menuCommand.setCategoryID(categoryID),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return menuCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ActorRole returns the role of the user updating the menu item.
func (c UpdateMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

// MenuItemID returns the identifier of the menu item being updated.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Title returns the new title, or nil when unchanged.
func (c UpdateMenuItemCommand) Title() *string {
	return c.title
}

// Price returns the new price, or nil when unchanged.
func (c UpdateMenuItemCommand) Price() *kernel.Money {
	return c.price
}

// Inventory returns the new stocked quantity, or nil when unchanged.
func (c UpdateMenuItemCommand) Inventory() *int {
	return c.inventory
}

// CategoryID returns the new category, or nil when unchanged.
func (c UpdateMenuItemCommand) CategoryID() *kernel.UUID {
	return c.categoryID
}

func (c *UpdateMenuItemCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setTitle(title *string) error {
	if title == nil {
		return nil
	}

	if *title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(price *kernel.Money) error {
	if price == nil {
		return nil
	}

	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateMenuItemCommand) setInventory(inventory *int) error {
	if inventory == nil {
		return nil
	}

	if *inventory < 0 {
		return ErrInventoryIsInvalid
	}

	c.inventory = inventory
	return nil
}

func (c *UpdateMenuItemCommand) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID == nil {
		return nil
	}

	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}
