package ports

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *catalog.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *catalog.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// GetByTitle retrieves a menu item by its unique title.
	// Returns ObjectNotFoundError if no item carries the title.
	GetByTitle(ctx context.Context, title string) (*catalog.MenuItem, error)

	// Delete removes a menu item. Deletion is refused while order lines
	// still reference the item.
	Delete(ctx context.Context, id kernel.UUID) error
}
