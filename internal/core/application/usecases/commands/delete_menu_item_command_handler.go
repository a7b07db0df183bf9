package commands

import (
	"context"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

// DeleteMenuItemCommandHandler handles manager-only menu item deletion.
// The repository refuses to delete an item that order lines still
// reference; that refusal surfaces as an input error.
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item deletion.
func NewDeleteMenuItemCommandHandler(uowFactory CatalogUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item deletion command.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	if err := uow.MenuItemRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
