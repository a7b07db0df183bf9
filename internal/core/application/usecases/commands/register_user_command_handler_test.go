package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserCommandHandler_Handle_CreatesCustomerWithHashedPassword(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	cmd, err := commands.NewRegisterUserCommand(userID, "newcomer", "new@example.com", "s3cretpass")
	require.NoError(t, err)

	userRepo := new(MockRoleUserRepository)
	uow := new(MockUserUoW)

	var created *user.User
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", ctx, "newcomer").
			Return(nil, errs.NewObjectNotFoundError("username", "newcomer")).
			Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*user.User)
			}).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.ID().IsEqual(userID))
	assert.Equal(t, "newcomer", created.Username())
	assert.Equal(t, user.Customer, created.Role())
	assert.NotEqual(t, "s3cretpass", created.PasswordHash())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash()), []byte("s3cretpass")))

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()
	existing := newCustomerAccount(t, "newcomer")

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "newcomer", "new@example.com", "s3cretpass")
	require.NoError(t, err)

	userRepo := new(MockRoleUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", ctx, "newcomer").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, commands.ErrUsernameIsTaken)
	userRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewRegisterUserCommand_PasswordTooShort(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "newcomer", "new@example.com", "short")

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPasswordIsTooShort)
}
