package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a user's cart lines straight from the database,
// joining the catalog for display titles.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart content queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. A user without a cart row gets an empty
// response rather than an error.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Items: make([]CartItemResponse, 0),
		Total: kernel.ZeroMoney(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.id,
			ci.menu_item_id,
			mi.title,
			ci.quantity,
			ci.unit_price,
			ci.price
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN menu_items mi ON mi.id = ci.menu_item_id
		WHERE c.user_id = ?
		ORDER BY ci.created_at
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, menuItemID   uuid.UUID
			title            string
			quantity         int
			unitPrice, price decimal.Decimal
		)

		if err = rows.Scan(&id, &menuItemID, &title, &quantity, &unitPrice, &price); err != nil {
			return GetCartQueryResponse{}, err
		}

		item, convErr := buildCartItemResponse(id, menuItemID, title, quantity, unitPrice, price)
		if convErr != nil {
			return GetCartQueryResponse{}, convErr
		}

		response.Items = append(response.Items, item)
		response.Total = response.Total.Add(item.Price)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}

func buildCartItemResponse(
	id, menuItemID uuid.UUID,
	title string,
	quantity int,
	unitPrice, price decimal.Decimal,
) (CartItemResponse, error) {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CartItemResponse{}, err
	}

	menuID, err := kernel.UUIDFromBytes(menuItemID[:])
	if err != nil {
		return CartItemResponse{}, err
	}

	unit, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return CartItemResponse{}, err
	}

	line, err := kernel.NewMoney(price)
	if err != nil {
		return CartItemResponse{}, err
	}

	return CartItemResponse{
		ID:            itemID,
		MenuItemID:    menuID,
		MenuItemTitle: title,
		Quantity:      quantity,
		UnitPrice:     unit,
		Price:         line,
	}, nil
}
