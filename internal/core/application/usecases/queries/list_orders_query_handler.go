package queries

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves role-scoped order pages from the database.
//
// The match count is taken before pagination so clients can render page
// controls, and the line items of the returned page are loaded in one
// follow-up query.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the order listing query.
//
// An authorized caller whose scope matches nothing gets an empty page with
// Total 0; only a caller whose role cannot be resolved is refused.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	scopeSQL, scopeArgs, err := orderScope(query.ActorID(), query.ActorRole())
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := scopeSQL
	args := scopeArgs
	if status := query.Status(); status != nil {
		where += " AND status = ?"
		args = append(args, status.Int())
	}

	var total int64
	if err = h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	direction := "ASC"
	if query.Descending() {
		direction = "DESC"
	}
	offset := (query.Page() - 1) * query.PerPage()

	// OrderBy comes from the constructor's whitelist, never from raw input
	pageSQL := fmt.Sprintf(`
		SELECT id, customer_id, delivery_crew_id, status, total, date
		FROM orders
		WHERE %s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, where, query.OrderBy(), direction)

	orders, err := h.scanOrders(ctx, pageSQL, append(args, query.PerPage(), offset)...)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if err = h.attachItems(ctx, orders); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Total:   total,
		Page:    query.Page(),
		PerPage: query.PerPage(),
		Orders:  orders,
	}, nil
}

// orderScope translates the caller's role into a visibility predicate.
func orderScope(actorID kernel.UUID, actorRole user.Role) (string, []any, error) {
	switch actorRole {
	case user.Manager:
		return "TRUE", nil, nil
	case user.Customer:
		return "customer_id = ?", []any{actorID.Bytes()}, nil
	case user.DeliveryCrew:
		return "delivery_crew_id = ?", []any{actorID.Bytes()}, nil
	case user.UnknownRole:
		return "", nil, errs.NewNotAuthorizedError("caller role could not be resolved")
	default:
		return "", nil, errs.NewNotAuthorizedError("caller role could not be resolved")
	}
}

func (h ListOrdersQueryHandler) scanOrders(
	ctx context.Context,
	sql string,
	args ...any,
) ([]OrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			id, customerID uuid.UUID
			deliveryCrewID uuid.NullUUID
			status         int
			total          decimal.Decimal
			date           time.Time
		)

		if err = rows.Scan(&id, &customerID, &deliveryCrewID, &status, &total, &date); err != nil {
			return nil, err
		}

		orderResp, convErr := buildOrderResponse(id, customerID, deliveryCrewID, status, total, date)
		if convErr != nil {
			return nil, convErr
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the line items of the given orders in one query and
// distributes them to their parents.
func (h ListOrdersQueryHandler) attachItems(ctx context.Context, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]int, len(orders))
	ids := make([]any, 0, len(orders))
	for i, o := range orders {
		index[o.ID] = i
		ids = append(ids, o.ID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, menu_item_id, quantity, unit_price, price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY created_at
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, orderID, menuItemID uuid.UUID
			quantity                int
			unitPrice, price        decimal.Decimal
		)

		if err = rows.Scan(&id, &orderID, &menuItemID, &quantity, &unitPrice, &price); err != nil {
			return err
		}

		item, convErr := buildOrderItemResponse(id, menuItemID, quantity, unitPrice, price)
		if convErr != nil {
			return convErr
		}

		parentID, convErr := kernel.UUIDFromBytes(orderID[:])
		if convErr != nil {
			return convErr
		}

		if i, ok := index[parentID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

func buildOrderResponse(
	id, customerID uuid.UUID,
	deliveryCrewID uuid.NullUUID,
	status int,
	total decimal.Decimal,
	date time.Time,
) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	customer, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var crew *kernel.UUID
	if deliveryCrewID.Valid {
		crewID, crewErr := kernel.UUIDFromBytes(deliveryCrewID.UUID[:])
		if crewErr != nil {
			return OrderResponse{}, crewErr
		}
		crew = &crewID
	}

	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:             orderID,
		CustomerID:     customer,
		DeliveryCrewID: crew,
		Status:         status,
		Total:          totalMoney,
		Date:           date,
		Items:          make([]OrderItemResponse, 0),
	}, nil
}

func buildOrderItemResponse(
	id, menuItemID uuid.UUID,
	quantity int,
	unitPrice, price decimal.Decimal,
) (OrderItemResponse, error) {
	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderItemResponse{}, err
	}

	menuID, err := kernel.UUIDFromBytes(menuItemID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}

	unit, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return OrderItemResponse{}, err
	}

	line, err := kernel.NewMoney(price)
	if err != nil {
		return OrderItemResponse{}, err
	}

	return OrderItemResponse{
		ID:         itemID,
		MenuItemID: menuID,
		Quantity:   quantity,
		UnitPrice:  unit,
		Price:      line,
	}, nil
}
