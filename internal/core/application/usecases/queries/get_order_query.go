package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order, subject to the caller's
// visibility: customers their own, crew their assignments, managers any.
type GetOrderQuery struct {
	actorID   kernel.UUID
	actorRole user.Role
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(actorID kernel.UUID, actorRole user.Role, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(actorID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actorID:   actorID,
		actorRole: actorRole,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ActorID returns the identifier of the user requesting the order.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role of the user requesting the order.
func (q GetOrderQuery) ActorRole() user.Role {
	return q.actorRole
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
