package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items.
//
// Existence is checked before visibility: an order that is not there is a
// not-found error for everyone, while an order the caller may not see is
// an authorization error.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order detail query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var (
		id, customerID uuid.UUID
		deliveryCrewID uuid.NullUUID
		status         int
		total          decimal.Decimal
		date           time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, delivery_crew_id, status, total, date
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &customerID, &deliveryCrewID, &status, &total, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	orderResp, err := buildOrderResponse(id, customerID, deliveryCrewID, status, total, date)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = checkOrderVisibility(orderResp, query.ActorID().Bytes(), query.ActorRole()); err != nil {
		return OrderResponse{}, err
	}

	lister := ListOrdersQueryHandler{db: h.db}
	orders := []OrderResponse{orderResp}
	if err = lister.attachItems(ctx, orders); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}

func checkOrderVisibility(orderResp OrderResponse, actorID uuid.UUID, actorRole user.Role) error {
	switch actorRole {
	case user.Manager:
		return nil
	case user.Customer:
		if orderResp.CustomerID.Bytes() == actorID {
			return nil
		}
	case user.DeliveryCrew:
		if orderResp.DeliveryCrewID != nil && orderResp.DeliveryCrewID.Bytes() == actorID {
			return nil
		}
	case user.UnknownRole:
	default:
	}

	return errs.NewNotAuthorizedError("order is not visible to this caller")
}
