package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var (
	ErrGetUserByUsernameQueryIsNotConstructed = errors.New(
		"GetUserByUsernameQuery must be created via NewGetUserByUsernameQuery constructor",
	)
	ErrUsernameIsEmpty = errors.New("username is required")
)

// GetUserByUsernameQuery retrieves a user account by username.
// Serves the login endpoint, which verifies the password against the
// returned hash.
type GetUserByUsernameQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetUserByUsernameQuery creates a query for an account lookup by username.
func NewGetUserByUsernameQuery(username string) (GetUserByUsernameQuery, error) {
	if username == "" {
		return GetUserByUsernameQuery{}, ErrUsernameIsEmpty
	}

	return GetUserByUsernameQuery{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByUsernameQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByUsernameQueryIsNotConstructed)
}

// Username returns the username being looked up.
func (q GetUserByUsernameQuery) Username() string {
	return q.username
}
