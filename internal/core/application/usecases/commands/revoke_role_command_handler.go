package commands

import (
	"context"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

// RevokeRoleCommandHandler handles manager-only group membership removal.
// A user who does not hold the role being revoked is not a member of the
// group, which surfaces as a not-found error.
type RevokeRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRevokeRoleCommandHandler creates a handler for role revocation.
func NewRevokeRoleCommandHandler(uowFactory UserUoWFactory) RevokeRoleCommandHandler {
	return RevokeRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role revocation command.
func (h *RevokeRoleCommandHandler) Handle(ctx context.Context, cmd RevokeRoleCommand) error {
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
	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if account.Role() != cmd.Role() {
		return errs.NewObjectNotFoundError("userId", cmd.UserID().String())
	}

	account.RevokeElevatedRole()

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
