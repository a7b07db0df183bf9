package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserByUsernameQueryHandler reads one user account by username.
type GetUserByUsernameQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByUsernameQueryHandler creates a handler for account lookups
// by username. Requires a GORM database connection for query execution.
func NewGetUserByUsernameQueryHandler(db *gorm.DB) GetUserByUsernameQueryHandler {
	return GetUserByUsernameQueryHandler{db: db}
}

// Handle executes the account lookup.
func (h GetUserByUsernameQueryHandler) Handle(
	ctx context.Context,
	query GetUserByUsernameQuery,
) (UserAccountResponse, error) {
	if err := query.Validate(); err != nil {
		return UserAccountResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, password_hash, role
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	account, err := scanUserAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return UserAccountResponse{}, errs.NewObjectNotFoundError("username", query.Username())
	}
	if err != nil {
		return UserAccountResponse{}, err
	}

	return account, nil
}
