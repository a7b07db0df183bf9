package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var ErrRevokeRoleCommandIsNotConstructed = errors.New(
	"RevokeRoleCommand must be created via NewRevokeRoleCommand constructor",
)

// RevokeRoleCommand represents a request to remove a user from the manager
// or delivery crew group. The target is addressed by user id, matching the
// group management API. Revocation reverts the user to a plain customer.
type RevokeRoleCommand struct { //nolint:recvcheck //using for validation
	actorRole user.Role
	userID    kernel.UUID
	role      user.Role

	guard guard.ConstructorGuard
}

// NewRevokeRoleCommand creates a command to revoke an elevated role.
func NewRevokeRoleCommand(actorRole user.Role, userID kernel.UUID, role user.Role) (RevokeRoleCommand, error) {
	roleCommand := RevokeRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setActorRole(actorRole),
		roleCommand.setUserID(userID),
		roleCommand.setRole(role),
	); err != nil {
		return RevokeRoleCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RevokeRoleCommand) Validate() error {
	return c.guard.Validate(ErrRevokeRoleCommandIsNotConstructed)
}

// ActorRole returns the role of the user revoking the membership.
func (c RevokeRoleCommand) ActorRole() user.Role {
	return c.actorRole
}

// UserID returns the target user's identifier.
func (c RevokeRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role being revoked.
func (c RevokeRoleCommand) Role() user.Role {
	return c.role
}

func (c *RevokeRoleCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *RevokeRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RevokeRoleCommand) setRole(role user.Role) error {
	if role != user.Manager && role != user.DeliveryCrew {
		return ErrRoleIsNotAssignable
	}

	c.role = role
	return nil
}
