package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrTitleIsRequired    = errors.New("title is required")
	ErrInventoryIsInvalid = errors.New("inventory must not be negative")
)

// CreateMenuItemCommand represents a request to add a dish to the menu.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("12.50")
//	cmd, err := NewCreateMenuItemCommand(user.Manager, kernel.NewUUID(),
//	    "Greek Salad", price, 40, categoryID)
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
//
//	handler := NewCreateMenuItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create menu item: %w", err)
//	}
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actorRole  user.Role
	menuItemID kernel.UUID
	title      string
	price      kernel.Money
	inventory  int
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
// Validates identifiers, the price value and that the title is present
// and the inventory non-negative.
func NewCreateMenuItemCommand(
	actorRole user.Role,
	menuItemID kernel.UUID,
	title string,
	price kernel.Money,
	inventory int,
	categoryID kernel.UUID,
) (CreateMenuItemCommand, error) {
	menuCommand := CreateMenuItemCommand{
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
		return CreateMenuItemCommand{}, err
	}

	return menuCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// ActorRole returns the role of the user creating the menu item.
func (c CreateMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

// MenuItemID returns the identity for the new menu item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Title returns the dish title.
func (c CreateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the dish price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Inventory returns the stocked quantity.
func (c CreateMenuItemCommand) Inventory() int {
	return c.inventory
}

// CategoryID returns the identifier of the category the dish belongs to.
func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c *CreateMenuItemCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *CreateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *CreateMenuItemCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setInventory(inventory int) error {
	if inventory < 0 {
		return ErrInventoryIsInvalid
	}

	c.inventory = inventory
	return nil
}

func (c *CreateMenuItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}
