// Package menuitemrepo provides data transfer objects and mapping functions
// for menu item persistence.
package menuitemrepo

import (
	"time"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting menu items.
// The title carries a unique index; duplicate titles surface as a database
// constraint violation, which the command layer pre-empts with GetByTitle.
type MenuItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"uniqueIndex"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Inventory  int
	CategoryID uuid.UUID       `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(aggregate *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         aggregate.ID().Bytes(),
		Title:      aggregate.Title(),
		Price:      aggregate.Price().Amount(),
		Inventory:  aggregate.Inventory(),
		CategoryID: aggregate.CategoryID().Bytes(),
	}
}

func toDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMenuItem(id, dto.Title, price, dto.Inventory, categoryID)
}
