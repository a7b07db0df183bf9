package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

var ErrTitleIsTaken = errors.New("title is already in use")

// CreateMenuItemCommandHandler handles manager-only menu item creation.
// Verifies the target category exists and the title is unique before
// constructing the aggregate.
type CreateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory CatalogUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command.
// An unknown category is an input error rather than a not-found error:
// the resource being addressed is the menu item, not the category.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorRole() != user.Manager {
		return errs.NewNotAuthorizedError("only managers can manage menu items")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("category_id", err)
		}
		return err
	}

	menuRepo := uow.MenuItemRepository()
	if _, err := menuRepo.GetByTitle(ctx, cmd.Title()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("title", ErrTitleIsTaken)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	menuItem, err := catalog.NewMenuItem(cmd.MenuItemID(), cmd.Title(), cmd.Price(), cmd.Inventory(), cmd.CategoryID())
	if err != nil {
		return err
	}

	if err = menuRepo.Add(ctx, menuItem); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
