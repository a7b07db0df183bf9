package queries

import (
	"context"
	"database/sql"
	"errors"

	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuItemQueryHandler reads one menu item with its category joined in.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for menu item detail queries.
// Requires a GORM database connection for query execution.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle executes the menu item detail query.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	var (
		id, categoryID            uuid.UUID
		title, slug, categoryName string
		price                     decimal.Decimal
		inventory                 int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			mi.id,
			mi.title,
			mi.price,
			mi.inventory,
			c.id,
			c.slug,
			c.title
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.id = ?
	`, query.MenuItemID().Bytes()).Row()

	err := row.Scan(&id, &title, &price, &inventory, &categoryID, &slug, &categoryName)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menuItemId", query.MenuItemID().String())
	}
	if err != nil {
		return MenuItemResponse{}, err
	}

	return buildMenuItemResponse(id, title, price, inventory, categoryID, slug, categoryName)
}
