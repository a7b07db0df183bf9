// Package order contains the Order aggregate, the root of the ordering
// domain.
//
// An Order is created at checkout from the contents of a customer's cart.
// Its lines are immutable snapshots of the cart lines, so catalog price
// changes after checkout never affect placed orders, and its total is
// frozen as the sum of the line totals.
//
// The delivery lifecycle is deliberately small. An order starts Pending,
// a manager assigns a delivery crew member, and the crew member (or a
// manager) flips the status to Delivered. Managers may also move an order
// back to Pending to reopen it.
//
// All construction goes through NewOrder or RestoreOrder, which enforce
// the aggregate's invariants. Direct struct instantiation yields a value
// that fails Validate.
package order
