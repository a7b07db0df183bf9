package commands

import (
	"context"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

// AssignRoleCommandHandler handles manager-only group membership grants.
// An unknown username is a not-found error, matching the group API
// contract.
type AssignRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAssignRoleCommandHandler creates a handler for role grant operations.
func NewAssignRoleCommandHandler(uowFactory UserUoWFactory) AssignRoleCommandHandler {
	return AssignRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role grant command.
func (h *AssignRoleCommandHandler) Handle(ctx context.Context, cmd AssignRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorRole() != user.Manager {
		return errs.NewNotAuthorizedError("only managers can manage group membership")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	account, err := userRepo.GetByUsername(ctx, cmd.Username())
	if err != nil {
		return err
	}

	if err = account.AssignRole(cmd.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
