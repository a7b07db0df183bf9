package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoleUserRepository struct{ mock.Mock }

func (m *MockRoleUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRoleUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRoleUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRoleUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func newCustomerAccount(t *testing.T, username string) *user.User {
	t.Helper()
	account, err := user.NewUser(kernel.NewUUID(), username, username+"@example.com", "$2a$10$hash")
	require.NoError(t, err)
	return account
}

func TestAssignRoleCommandHandler_Handle_ManagerGrantsDeliveryCrew(t *testing.T) {
	ctx := t.Context()
	account := newCustomerAccount(t, "driver-7")

	cmd, err := commands.NewAssignRoleCommand(user.Manager, "driver-7", user.DeliveryCrew)
	require.NoError(t, err)

	userRepo := new(MockRoleUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", ctx, "driver-7").Return(account, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, user.DeliveryCrew, account.Role())

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignRoleCommandHandler_Handle_NonManagerForbidden(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAssignRoleCommand(user.Customer, "driver-7", user.DeliveryCrew)
	require.NoError(t, err)

	factory := new(MockUserUoWFactory)

	handler := commands.NewAssignRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignRoleCommandHandler_Handle_UnknownUsername(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAssignRoleCommand(user.Manager, "nobody", user.Manager)
	require.NoError(t, err)

	userRepo := new(MockRoleUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", ctx, "nobody").
			Return(nil, errs.NewObjectNotFoundError("username", "nobody")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewAssignRoleCommand_CustomerIsNotGrantable(t *testing.T) {
	_, err := commands.NewAssignRoleCommand(user.Manager, "driver-7", user.Customer)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRoleIsNotAssignable)
}

func TestRevokeRoleCommandHandler_Handle_ManagerRevokesCrewRole(t *testing.T) {
	ctx := t.Context()
	account := newCustomerAccount(t, "driver-7")
	require.NoError(t, account.AssignRole(user.DeliveryCrew))

	cmd, err := commands.NewRevokeRoleCommand(user.Manager, account.ID(), user.DeliveryCrew)
	require.NoError(t, err)

	userRepo := new(MockRoleUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, account.ID()).Return(account, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRevokeRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, user.Customer, account.Role())
}

func TestRevokeRoleCommandHandler_Handle_UserNotInGroup(t *testing.T) {
	ctx := t.Context()
	account := newCustomerAccount(t, "driver-7")

	cmd, err := commands.NewRevokeRoleCommand(user.Manager, account.ID(), user.DeliveryCrew)
	require.NoError(t, err)

	userRepo := new(MockRoleUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, account.ID()).Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRevokeRoleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, user.Customer, account.Role())
	uow.AssertNotCalled(t, "Commit", ctx)
}
