package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserQueryHandler reads one user account by id.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for account lookups by id.
// Requires a GORM database connection for query execution.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the account lookup.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserAccountResponse, error) {
	if err := query.Validate(); err != nil {
		return UserAccountResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, password_hash, role
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Row()

	account, err := scanUserAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return UserAccountResponse{}, errs.NewObjectNotFoundError("userId", query.UserID().String())
	}
	if err != nil {
		return UserAccountResponse{}, err
	}

	return account, nil
}

func scanUserAccount(row *sql.Row) (UserAccountResponse, error) {
	var (
		id                            uuid.UUID
		username, email, passwordHash string
		role                          int
	)

	if err := row.Scan(&id, &username, &email, &passwordHash, &role); err != nil {
		return UserAccountResponse{}, err
	}

	return buildUserAccountResponse(id, username, email, passwordHash, role)
}

func buildUserAccountResponse(
	id uuid.UUID,
	username, email, passwordHash string,
	role int,
) (UserAccountResponse, error) {
	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserAccountResponse{}, err
	}

	accountRole := user.Role(role)
	if err = accountRole.Validate(); err != nil {
		return UserAccountResponse{}, err
	}

	return UserAccountResponse{
		ID:           userID,
		Username:     username,
		Email:        email,
		Role:         accountRole,
		PasswordHash: passwordHash,
	}, nil
}
