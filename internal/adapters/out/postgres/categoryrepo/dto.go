// Package categoryrepo provides data transfer objects and mapping functions
// for category persistence. Categories are written only by seeding; the API
// reads and references them.
package categoryrepo

import (
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug  string    `gorm:"uniqueIndex"`
	Title string
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(aggregate *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:    aggregate.ID().Bytes(),
		Slug:  aggregate.Slug(),
		Title: aggregate.Title(),
	}
}

func toDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewCategory(id, dto.Slug, dto.Title)
}
