package ports

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for menu categories.
// Categories are created out of band; the API only reads and references them.
type CategoryRepository interface {
	// Add persists a new category. Used by seeding.
	Add(ctx context.Context, aggregate *catalog.Category) error

	// Get retrieves a category by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)
}
