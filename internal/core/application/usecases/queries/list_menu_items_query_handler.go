package queries

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListMenuItemsQueryHandler reads the menu with categories joined in.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewListMenuItemsQueryHandler creates a handler for menu listing queries.
// Requires a GORM database connection for query execution.
func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle executes the menu listing query, applying the query's search,
// category and price filters and its whitelisted ordering.
func (h ListMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query ListMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "TRUE"
	args := []any{}
	if search := query.Search(); search != "" {
		where += " AND (mi.title ILIKE ? OR c.title ILIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	if category := query.Category(); category != "" {
		where += " AND c.title = ?"
		args = append(args, category)
	}
	if price := query.Price(); price != nil {
		where += " AND mi.price = ?"
		args = append(args, price.Amount())
	}

	direction := "ASC"
	if query.Descending() {
		direction = "DESC"
	}

	// OrderBy comes from the constructor's whitelist, never from raw input
	listSQL := fmt.Sprintf(`
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
		WHERE %s
		ORDER BY %s %s
	`, where, query.OrderBy(), direction)

	rows, err := h.db.WithContext(ctx).Raw(listSQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			id, categoryID            uuid.UUID
			title, slug, categoryName string
			price                     decimal.Decimal
			inventory                 int
		)

		if err = rows.Scan(&id, &title, &price, &inventory, &categoryID, &slug, &categoryName); err != nil {
			return nil, err
		}

		item, convErr := buildMenuItemResponse(id, title, price, inventory, categoryID, slug, categoryName)
		if convErr != nil {
			return nil, convErr
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func buildMenuItemResponse(
	id uuid.UUID,
	title string,
	price decimal.Decimal,
	inventory int,
	categoryID uuid.UUID,
	categorySlug, categoryTitle string,
) (MenuItemResponse, error) {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return MenuItemResponse{}, err
	}

	catID, err := kernel.UUIDFromBytes(categoryID[:])
	if err != nil {
		return MenuItemResponse{}, err
	}

	priceMoney, err := kernel.NewMoney(price)
	if err != nil {
		return MenuItemResponse{}, err
	}

	return MenuItemResponse{
		ID:            itemID,
		Title:         title,
		Price:         priceMoney,
		Inventory:     inventory,
		CategoryID:    catID,
		CategorySlug:  categorySlug,
		CategoryTitle: categoryTitle,
	}, nil
}
