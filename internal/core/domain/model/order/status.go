package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the delivery state of an order.
//
// The wire representation is the numeric value itself: 0 means the order is
// still out with the kitchen or the delivery crew, 1 means it has been
// delivered. Managers may move an order in either direction, for example to
// reopen an order that was marked delivered by mistake.
//
// Status is a value object that validates raw values coming from external
// sources and provides string representations for persistence and display.
type Status int

const (
	// Pending is the initial status when an order is placed.
	// Orders in this status are waiting to be prepared and delivered.
	Pending Status = 0

	// Delivered indicates the order has reached the customer.
	Delivered Status = 1
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// StatusFromInt converts a raw numeric value into a Status.
//
// Only 0 (Pending) and 1 (Delivered) are accepted. Any other value yields
// a validation error carrying the offending number.
//
// This is the entry point for status values arriving from the API or the
// database.
func StatusFromInt(value int) (Status, error) {
	status := Status(value)
	if err := status.Validate(); err != nil {
		return 0, err
	}
	return status, nil
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending (0), Delivered (1).
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Pending" or "Delivered" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Int returns the numeric wire value of the status.
func (s Status) Int() int {
	return int(s)
}
