package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CheckoutCommandHandler handles the business logic for placing an order.
// Order creation and cart clearing happen in one transaction: either the
// order with all its lines exists and the cart is empty, or nothing changed.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, services.NewCheckoutService())
//	cmd, _ := NewCheckoutCommand(userID, kernel.NewUUID())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommandHandler struct {
	uowFactory      CheckoutUoWFactory
	checkoutService services.CheckoutService
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence and the
// checkout domain service.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	checkoutService services.CheckoutService,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:      uowFactory,
		checkoutService: checkoutService,
	}
}

// Handle processes the checkout command.
// A user without a cart is treated the same as one with an empty cart:
// both fail with services.ErrCartIsEmpty and leave no order behind.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUserID(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.ErrCartIsEmpty
	}
	if err != nil {
		return err
	}

	placedOrder, err := h.checkoutService.Checkout(userCart, cmd.OrderID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placedOrder); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
