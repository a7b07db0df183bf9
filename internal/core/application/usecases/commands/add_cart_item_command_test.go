package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand_ValidInput(t *testing.T) {
	userID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	cmd, err := commands.NewAddCartItemCommand(userID, menuItemID, 3)

	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, menuItemID, cmd.MenuItemID())
	assert.Equal(t, 3, cmd.Quantity())
}

func TestNewAddCartItemCommand_InvalidUserID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error

	_, err := commands.NewAddCartItemCommand(invalidID, kernel.NewUUID(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAddCartItemCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestAddCartItemCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AddCartItemCommand

	err := cmd.Validate()

	require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
}
