package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewListMenuItemsQuery_Defaults(t *testing.T) {
	// Act
	query, err := queries.NewListMenuItemsQuery("", "", "", nil)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, "mi.title", query.OrderBy())
	assert.False(t, query.Descending())
	assert.Empty(t, query.Search())
	assert.Empty(t, query.Category())
	assert.Nil(t, query.Price())
}

func Test_NewListMenuItemsQuery_Ordering(t *testing.T) {
	tests := []struct {
		name       string
		ordering   string
		orderBy    string
		descending bool
	}{
		{"AscendingTitle", "title", "mi.title", false},
		{"DescendingPrice", "-price", "mi.price", true},
		{"AscendingInventory", "inventory", "mi.inventory", false},
		{"DescendingCategory", "-category", "c.title", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Act
			query, err := queries.NewListMenuItemsQuery(test.ordering, "", "", nil)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, test.orderBy, query.OrderBy())
			assert.Equal(t, test.descending, query.Descending())
		})
	}
}

func Test_NewListMenuItemsQuery_UnknownOrderingColumn(t *testing.T) {
	// Act
	_, err := queries.NewListMenuItemsQuery("title; DROP TABLE menu_items", "", "", nil)

	// Assert
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_NewListMenuItemsQuery_Filters(t *testing.T) {
	// Arrange
	price, err := kernel.MoneyFromString("12.50")
	require.NoError(t, err)

	// Act
	query, err := queries.NewListMenuItemsQuery("", "  lemon ", " Desserts ", &price)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "lemon", query.Search())
	assert.Equal(t, "Desserts", query.Category())
	assert.NotNil(t, query.Price())
	assert.True(t, price.IsEqual(*query.Price()))
}

func Test_NewListMenuItemsQuery_InvalidPrice(t *testing.T) {
	// Arrange
	var price kernel.Money // not constructed properly

	// Act
	_, err := queries.NewListMenuItemsQuery("", "", "", &price)

	// Assert
	assert.Error(t, err)
}

func Test_ListMenuItemsQuery_Empty(t *testing.T) {
	// Arrange
	query := queries.ListMenuItemsQuery{}

	// Assert
	assert.ErrorIs(t, query.Validate(), queries.ErrListMenuItemsQueryIsNotConstructed)
}
