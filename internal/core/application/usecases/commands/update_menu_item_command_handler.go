package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

// UpdateMenuItemCommandHandler handles manager-only menu item updates.
// Renames re-check title uniqueness and category moves re-check the
// target category, the same rules as creation.
type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item update command.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	menuRepo := uow.MenuItemRepository()
	menuItem, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if title := cmd.Title(); title != nil && *title != menuItem.Title() {
		if _, err = menuRepo.GetByTitle(ctx, *title); err == nil {
			return errs.NewValueIsInvalidErrorWithCause("title", ErrTitleIsTaken)
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		if err = menuItem.ChangeTitle(*title); err != nil {
			return err
		}
	}

	if price := cmd.Price(); price != nil {
		if err = menuItem.ChangePrice(*price); err != nil {
			return err
		}
	}

	if inventory := cmd.Inventory(); inventory != nil {
		if err = menuItem.ChangeInventory(*inventory); err != nil {
			return err
		}
	}

	if categoryID := cmd.CategoryID(); categoryID != nil {
		if _, err = uow.CategoryRepository().Get(ctx, *categoryID); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewValueIsInvalidErrorWithCause("category_id", err)
			}
			return err
		}

		if err = menuItem.ChangeCategory(*categoryID); err != nil {
			return err
		}
	}

	if err = menuRepo.Update(ctx, menuItem); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
