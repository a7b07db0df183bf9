package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for cart additions.
// Lazily creates the caller's cart on first use and snapshots the menu
// item's current price into the cart line.
//
// Example:
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	cmd, _ := NewAddCartItemCommand(userID, menuItemID, 1)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("cart update failed: %w", err)
//	}
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart addition operations.
// Requires a CartUoWFactory for transactional persistence.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// The cart row is read with a row lock inside the transaction so that
// concurrent additions to the same cart serialize instead of losing
// increments. When two first-time additions race on the one-cart-per-user
// constraint, the loser's insert fails and the addition is retried once in
// a fresh transaction, where it finds the winner's cart and updates it.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.addItem(ctx, cmd)
	if errors.Is(err, ports.ErrCartAlreadyExists) {
		err = h.addItem(ctx, cmd)
	}

	return err
}

func (h *AddCartItemCommandHandler) addItem(ctx context.Context, cmd AddCartItemCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItem, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUserID(ctx, cmd.UserID())

	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		userCart, err = cart.NewCart(kernel.NewUUID(), cmd.UserID())
		created = true
	}
	if err != nil {
		return err
	}

	if err = userCart.AddItem(kernel.NewUUID(), menuItem.ID(), menuItem.Price(), cmd.Quantity()); err != nil {
		return err
	}

	if created {
		err = cartRepo.Add(ctx, userCart)
	} else {
		err = cartRepo.Update(ctx, userCart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
