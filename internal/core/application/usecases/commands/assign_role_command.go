package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/guard"
)

var (
	ErrAssignRoleCommandIsNotConstructed = errors.New(
		"AssignRoleCommand must be created via NewAssignRoleCommand constructor",
	)
	ErrRoleIsNotAssignable = errors.New("only the manager and delivery crew roles can be granted")
)

// AssignRoleCommand represents a request to add a user to the manager or
// delivery crew group. The target is addressed by username, matching the
// group management API.
type AssignRoleCommand struct { //nolint:recvcheck //using for validation
	actorRole user.Role
	username  string
	role      user.Role

	guard guard.ConstructorGuard
}

// NewAssignRoleCommand creates a command to grant an elevated role.
// Only Manager and DeliveryCrew can be granted; Customer is the default
// state, not a group.
func NewAssignRoleCommand(actorRole user.Role, username string, role user.Role) (AssignRoleCommand, error) {
	roleCommand := AssignRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setActorRole(actorRole),
		roleCommand.setUsername(username),
		roleCommand.setRole(role),
	); err != nil {
		return AssignRoleCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRoleCommand) Validate() error {
	return c.guard.Validate(ErrAssignRoleCommandIsNotConstructed)
}

// ActorRole returns the role of the user granting the membership.
func (c AssignRoleCommand) ActorRole() user.Role {
	return c.actorRole
}

// Username returns the target user's username.
func (c AssignRoleCommand) Username() string {
	return c.username
}

// Role returns the role being granted.
func (c AssignRoleCommand) Role() user.Role {
	return c.role
}

func (c *AssignRoleCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *AssignRoleCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *AssignRoleCommand) setRole(role user.Role) error {
	if role != user.Manager && role != user.DeliveryCrew {
		return ErrRoleIsNotAssignable
	}

	c.role = role
	return nil
}
