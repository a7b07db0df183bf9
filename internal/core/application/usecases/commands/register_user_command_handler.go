package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

var ErrUsernameIsTaken = errors.New("username is already in use")

// RegisterUserCommandHandler handles customer account creation.
// Passwords are stored as bcrypt hashes, never in plaintext.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err = userRepo.GetByUsername(ctx, cmd.Username()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("username", ErrUsernameIsTaken)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	account, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.Email(), string(hash))
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
