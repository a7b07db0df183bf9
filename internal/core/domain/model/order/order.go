package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// ErrOrderHasNoItems is returned when an order would be created without
// any lines. Checkout on an empty cart must never reach this point, the
// guard protects direct constructor callers.
var ErrOrderHasNoItems = errors.New("Order must contain at least one item")

// Order represents a placed customer order. It is the aggregate root that
// manages the order from checkout through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Must contain at least one line item
//   - Total always equals the sum of the line totals
//   - Lines are immutable snapshots taken at checkout
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// deliveryCrewID is the assigned crew member's ID (nil if unassigned)
	deliveryCrewID *kernel.UUID

	// status represents the delivery state of the order
	status Status

	// total is the sum of the line totals, frozen at checkout
	total kernel.Money

	// date is the moment the order was placed
	date time.Time

	// items are the order lines copied from the cart at checkout
	items []*Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order at checkout time.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: The customer placing the order (must be a valid UUID)
//   - items: The order lines copied from the cart (must be non-empty)
//   - date: The checkout timestamp
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderId := kernel.NewUUID()
//	order, err := NewOrder(orderId, customerId, lines, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//
// The order starts in Pending status with no delivery crew assigned, and
// its total is computed from the lines.
func NewOrder(id, customerID kernel.UUID, items []*Item, date time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		date:          date,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
//
// Unlike NewOrder it accepts the stored status, delivery crew assignment and
// total. The stored total must equal the sum of the line totals.
func RestoreOrder(id, customerID kernel.UUID, deliveryCrewID *kernel.UUID,
	status Status, total kernel.Money, date time.Time, items []*Item) (*Order, error) {
	order, err := NewOrder(id, customerID, items, date)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	if deliveryCrewID != nil {
		if err := deliveryCrewID.Validate(); err != nil {
			return nil, err
		}
		order.deliveryCrewID = deliveryCrewID
	}

	if !order.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidError("total does not equal the sum of the order lines")
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed otherwise
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryCrew returns the assigned crew member's ID.
// Returns nil if no crew member is assigned.
func (o *Order) DeliveryCrew() *kernel.UUID {
	return o.deliveryCrewID
}

// Status returns the current delivery status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total, frozen at checkout.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Date returns the moment the order was placed.
func (o *Order) Date() time.Time {
	return o.date
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// AssignCrew assigns the order to a delivery crew member.
//
// The crew member ID must be valid. Reassignment is allowed at any point
// in the order lifecycle; managers routinely shuffle deliveries.
//
// Parameters:
//   - crewID: The ID of the crew member to assign
//
// Returns:
//   - nil on successful assignment
//   - error if the crew member ID is invalid
//
// Example:
//
//	crewId := kernel.NewUUID()
//	err := order.AssignCrew(crewId)
//	if err != nil {
//	    // Handle assignment failure
//	}
func (o *Order) AssignCrew(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}

	o.deliveryCrewID = &crewID
	return nil
}

// SetStatus moves the order to the given delivery status.
//
// Both directions are allowed: Pending to Delivered when the crew drops
// the order off, and Delivered back to Pending when a manager reopens an
// order that was closed by mistake.
//
// Returns:
//   - nil on success
//   - error if the status value is invalid
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates the order lines and computes the total.
// This is a private method used only during construction.
func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Price())
	}

	o.items = items
	o.total = total
	return nil
}
