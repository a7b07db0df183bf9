package queries

import (
	"context"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListGroupMembersQueryHandler reads the accounts holding a given role.
type ListGroupMembersQueryHandler struct {
	db *gorm.DB
}

// NewListGroupMembersQueryHandler creates a handler for group member
// listings. Requires a GORM database connection for query execution.
func NewListGroupMembersQueryHandler(db *gorm.DB) ListGroupMembersQueryHandler {
	return ListGroupMembersQueryHandler{db: db}
}

// Handle executes the group member listing.
func (h ListGroupMembersQueryHandler) Handle(
	ctx context.Context,
	query ListGroupMembersQuery,
) ([]UserAccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.ActorRole() != user.Manager {
		return nil, errs.NewNotAuthorizedError("only managers can manage group membership")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, password_hash, role
		FROM users
		WHERE role = ?
		ORDER BY username
	`, int(query.Role())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]UserAccountResponse, 0)
	for rows.Next() {
		var (
			id                            uuid.UUID
			username, email, passwordHash string
			role                          int
		)

		if err = rows.Scan(&id, &username, &email, &passwordHash, &role); err != nil {
			return nil, err
		}

		member, convErr := buildUserAccountResponse(id, username, email, passwordHash, role)
		if convErr != nil {
			return nil, convErr
		}

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
