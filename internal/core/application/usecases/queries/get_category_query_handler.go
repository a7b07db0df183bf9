package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCategoryQueryHandler reads one category.
type GetCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryQueryHandler creates a handler for category detail queries.
// Requires a GORM database connection for query execution.
func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

// Handle executes the category detail query.
func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return CategoryResponse{}, err
	}

	var (
		id          uuid.UUID
		slug, title string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, slug, title
		FROM categories
		WHERE id = ?
	`, query.CategoryID().Bytes()).Row()

	err := row.Scan(&id, &slug, &title)
	if errors.Is(err, sql.ErrNoRows) {
		return CategoryResponse{}, errs.NewObjectNotFoundError("categoryId", query.CategoryID().String())
	}
	if err != nil {
		return CategoryResponse{}, err
	}

	categoryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CategoryResponse{}, err
	}

	return CategoryResponse{
		ID:    categoryID,
		Slug:  slug,
		Title: title,
	}, nil
}
