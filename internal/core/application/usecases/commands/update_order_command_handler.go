package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

var (
	ErrCrewUserNotFound      = errors.New("user not found")
	ErrUserIsNotDeliveryCrew = errors.New("user is not in delivery crew")
)

// UpdateOrderCommandHandler handles role-gated order updates.
//
// Managers may assign a delivery crew member and set the status.
// Crew members may set the status of orders assigned to them; any other
// fields in their request are silently ignored. Customers cannot update
// orders at all.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
//
// Crew assignment verifies the target user exists and actually holds the
// delivery crew role; both failures are input errors, not not-found
// errors, matching the API contract.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	targetOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.ActorRole() {
	case user.Manager:
		err = h.applyManagerUpdate(ctx, uow, targetOrder, cmd)
	case user.DeliveryCrew:
		err = h.applyCrewUpdate(targetOrder, cmd)
	case user.Customer, user.UnknownRole:
		err = errs.NewNotAuthorizedError("only managers and delivery crew can update orders")
	default:
		err = errs.NewNotAuthorizedError("only managers and delivery crew can update orders")
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateOrderCommandHandler) applyManagerUpdate(
	ctx context.Context,
	uow OrderUoW,
	targetOrder *order.Order,
	cmd UpdateOrderCommand,
) error {
	if crewID := cmd.DeliveryCrewID(); crewID != nil {
		crewUser, err := uow.UserRepository().Get(ctx, *crewID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("delivery_crew_id", ErrCrewUserNotFound)
		}
		if err != nil {
			return err
		}

		if !crewUser.IsDeliveryCrew() {
			return errs.NewValueIsInvalidErrorWithCause("delivery_crew_id", ErrUserIsNotDeliveryCrew)
		}

		if err = targetOrder.AssignCrew(crewUser.ID()); err != nil {
			return err
		}
	}

	if status := cmd.Status(); status != nil {
		return targetOrder.SetStatus(*status)
	}

	return nil
}

func (h *UpdateOrderCommandHandler) applyCrewUpdate(targetOrder *order.Order, cmd UpdateOrderCommand) error {
	assignedCrew := targetOrder.DeliveryCrew()
	if assignedCrew == nil || !assignedCrew.IsEqual(cmd.ActorID()) {
		return errs.NewNotAuthorizedError("order is not assigned to this crew member")
	}

	// crew requests may carry other fields; only the status is honored
	if status := cmd.Status(); status != nil {
		return targetOrder.SetStatus(*status)
	}

	return nil
}
