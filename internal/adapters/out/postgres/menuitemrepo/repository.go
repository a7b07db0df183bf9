package menuitemrepo

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item to the database.
func (r *GormMenuItemRepository) Add(ctx context.Context, aggregate *catalog.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing menu item to the database.
func (r *GormMenuItemRepository) Update(ctx context.Context, aggregate *catalog.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("title", "price", "inventory", "category_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItemId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTitle retrieves a menu item by its unique title.
func (r *GormMenuItemRepository) GetByTitle(ctx context.Context, title string) (*catalog.MenuItem, error) {
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "title = ?", title).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("title", title)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a menu item. Deletion is refused while cart or order lines
// still reference the item, so purchase history keeps its snapshots intact.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var references int64
	err := db.Table("order_items").
		Where("menu_item_id = ?", id.Bytes()).
		Count(&references).Error
	if err != nil {
		return err
	}

	if references == 0 {
		err = db.Table("cart_items").
			Where("menu_item_id = ?", id.Bytes()).
			Count(&references).Error
		if err != nil {
			return err
		}
	}

	if references > 0 {
		return errs.NewValueIsInvalidErrorWithCause("menuItemId",
			fmt.Errorf("menu item %s is still referenced by %d line items", id, references))
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&MenuItemDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItemId", id.String())
	}

	return nil
}
