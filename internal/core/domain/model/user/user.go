package user

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User represents an account known to the identity provider: a customer, a
// manager or a delivery crew member. The aggregate carries exactly one role;
// revoking an elevated role reverts the account to Customer.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty username and password hash
//   - Role is always one of Customer, Manager, DeliveryCrew
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	role         Role

	isConstructed bool
}

// NewUser creates a new User with the Customer role.
// The password hash must already be computed; the domain never sees plaintext.
func NewUser(id kernel.UUID, username, email, passwordHash string) (*User, error) {
	return RestoreUser(id, username, email, passwordHash, Customer)
}

// RestoreUser reconstructs a User from persisted state, including its role.
func RestoreUser(id kernel.UUID, username, email, passwordHash string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
		email:         email,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was properly constructed through a factory method.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the contact email, possibly empty.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's current role.
func (u *User) Role() Role {
	return u.role
}

// IsManager reports whether the user holds the Manager role.
func (u *User) IsManager() bool {
	return u.role == Manager
}

// IsDeliveryCrew reports whether the user holds the DeliveryCrew role.
func (u *User) IsDeliveryCrew() bool {
	return u.role == DeliveryCrew
}

// IsCustomer reports whether the user holds no elevated role.
func (u *User) IsCustomer() bool {
	return u.role == Customer
}

// AssignRole grants the user the given role, replacing the current one.
// Assigning Customer is equivalent to RevokeElevatedRole.
func (u *User) AssignRole(role Role) error {
	return u.setRole(role)
}

// RevokeElevatedRole reverts the user to Customer.
func (u *User) RevokeElevatedRole() {
	u.role = Customer
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
