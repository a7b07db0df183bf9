package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListGroupMembersQueryIsNotConstructed = errors.New(
		"ListGroupMembersQuery must be created via NewListGroupMembersQuery constructor",
	)
	ErrGroupRoleIsInvalid = errors.New("only the manager and delivery crew groups can be listed")
)

// ListGroupMembersQuery retrieves the members of the manager or delivery
// crew group. Manager-only, like the rest of group management.
type ListGroupMembersQuery struct {
	actorRole user.Role
	role      user.Role

	guard guard.ConstructorGuard
}

// NewListGroupMembersQuery creates a query for a group's member list.
func NewListGroupMembersQuery(actorRole user.Role, role user.Role) (ListGroupMembersQuery, error) {
	if role != user.Manager && role != user.DeliveryCrew {
		return ListGroupMembersQuery{}, ErrGroupRoleIsInvalid
	}

	return ListGroupMembersQuery{
		actorRole: actorRole,
		role:      role,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListGroupMembersQuery) Validate() error {
	return q.guard.Validate(ErrListGroupMembersQueryIsNotConstructed)
}

// ActorRole returns the role of the user listing the group.
func (q ListGroupMembersQuery) ActorRole() user.Role {
	return q.actorRole
}

// Role returns the group being listed.
func (q ListGroupMembersQuery) Role() user.Role {
	return q.role
}
