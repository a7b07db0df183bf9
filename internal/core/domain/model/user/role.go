package user

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role represents the caller's position in the restaurant, resolved once per
// request from the identity token and then matched exhaustively. It replaces
// runtime group-name string comparisons with a typed enum.
//
// Customer is the absence of an elevated role: users start as customers and
// gain Manager or DeliveryCrew through explicit group assignment.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer may browse the menu, manage their own cart, place orders
	// and read their own orders.
	Customer

	// Manager administers the catalog, sees and updates every order, and
	// manages group membership.
	Manager

	// DeliveryCrew sees orders assigned to them and may update only the
	// status of those orders.
	DeliveryCrew
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "Unknown",
		Customer:     "Customer",
		Manager:      "Manager",
		DeliveryCrew: "DeliveryCrew",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer:     "Customer",
		Manager:      "Manager",
		DeliveryCrew: "DeliveryCrew",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are Customer, Manager and DeliveryCrew; UnknownRole and any
// other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Returns "Unknown" for invalid role values. Implements fmt.Stringer and is
// safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
