package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order's delivery
// state. Absent fields leave the order untouched.
//
// What the update may change depends on who is asking: managers may set
// the delivery crew assignment and the status, crew members may set the
// status of orders assigned to them. The role rules themselves live in
// the handler.
//
// Example:
//
//	status := 1
//	cmd, err := NewUpdateOrderCommand(actorID, user.Manager, orderID, &crewID, &status)
//	if err != nil {
//	    return fmt.Errorf("invalid order update: %w", err)
//	}
//
//	handler := NewUpdateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order update failed: %w", err)
//	}
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actorID        kernel.UUID
	actorRole      user.Role
	orderID        kernel.UUID
	deliveryCrewID *kernel.UUID
	status         *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an order.
// The raw status value is converted to a typed order.Status; anything
// other than 0 or 1 fails validation here.
func NewUpdateOrderCommand(
	actorID kernel.UUID,
	actorRole user.Role,
	orderID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status *int,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setActorID(actorID),
		orderCommand.setActorRole(actorRole),
		orderCommand.setOrderID(orderID),
		orderCommand.setDeliveryCrewID(deliveryCrewID),
		orderCommand.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// ActorID returns the identifier of the user performing the update.
func (c UpdateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user performing the update.
func (c UpdateOrderCommand) ActorRole() user.Role {
	return c.actorRole
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryCrewID returns the crew member to assign, or nil when the
// assignment is not part of the update.
func (c UpdateOrderCommand) DeliveryCrewID() *kernel.UUID {
	return c.deliveryCrewID
}

// Status returns the new status, or nil when the status is not part of
// the update.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateOrderCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDeliveryCrewID(deliveryCrewID *kernel.UUID) error {
	if deliveryCrewID == nil {
		return nil
	}

	if err := deliveryCrewID.Validate(); err != nil {
		return err
	}

	c.deliveryCrewID = deliveryCrewID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *int) error {
	if status == nil {
		return nil
	}

	newStatus, err := order.StatusFromInt(*status)
	if err != nil {
		return err
	}

	c.status = &newStatus
	return nil
}
