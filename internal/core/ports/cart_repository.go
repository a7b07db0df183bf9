package ports

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
)

// ErrCartAlreadyExists reports that the user already owns a cart row.
// Surfaces when two first-time additions race on the one-cart-per-user
// constraint; the loser retries as an update of the winner's cart.
var ErrCartAlreadyExists = errors.New("user already has a cart")

// CartRepository defines the persistence contract for cart aggregates.
// Each user has at most one cart; carts are looked up by their owner.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	// Returns ErrCartAlreadyExists if the owner already has a cart row.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate, including
	// added, changed and removed line items.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByUserID retrieves the cart owned by the given user.
	// Inside a transaction the cart row is locked for update so that
	// concurrent mutations of the same cart serialize.
	// Returns ObjectNotFoundError if the user has no cart yet.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// DeleteItemsIdleSince removes line items that have not been touched
	// since the given cutoff. Returns the number of removed lines.
	// Used by the cart janitor job.
	DeleteItemsIdleSince(ctx context.Context, cutoff time.Time) (int64, error)
}
