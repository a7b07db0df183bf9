package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetCategoryQueryIsNotConstructed = errors.New(
	"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
)

// GetCategoryQuery retrieves a single menu category by id.
type GetCategoryQuery struct {
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCategoryQuery creates a query for one category.
func NewGetCategoryQuery(categoryID kernel.UUID) (GetCategoryQuery, error) {
	if err := categoryID.Validate(); err != nil {
		return GetCategoryQuery{}, err
	}

	return GetCategoryQuery{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

// CategoryID returns the identifier of the requested category.
func (q GetCategoryQuery) CategoryID() kernel.UUID {
	return q.categoryID
}

// CategoryResponse is a category view.
type CategoryResponse struct {
	ID    kernel.UUID
	Slug  string
	Title string
}
