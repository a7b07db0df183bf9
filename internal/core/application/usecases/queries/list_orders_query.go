package queries

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	// DefaultOrdering sorts newest orders first.
	DefaultOrdering = "-date"

	// DefaultPerPage is the page size when the caller does not ask for one.
	DefaultPerPage = 5

	// MaxPerPage caps the page size; larger requests are rejected rather
	// than silently clamped.
	MaxPerPage = 100
)

// orderingColumns whitelists the sortable columns of the orders table.
// Anything outside this set is rejected before it can reach the SQL text.
func orderingColumns() map[string]string {
	return map[string]string{
		"id":               "id",
		"status":           "status",
		"total":            "total",
		"date":             "date",
		"delivery_crew_id": "delivery_crew_id",
	}
}

// ListOrdersQuery retrieves a filtered, sorted page of orders visible to
// the caller. Customers see their own orders, delivery crew see orders
// assigned to them, managers see everything.
//
// Example:
//
//	status := 0
//	query, err := NewListOrdersQuery(actorID, user.Manager, &status, "-total", 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	page, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type ListOrdersQuery struct {
	actorID    kernel.UUID
	actorRole  user.Role
	status     *order.Status
	orderBy    string
	descending bool
	page       int
	perPage    int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders.
//
// The ordering parameter names a whitelisted column, optionally prefixed
// with "-" for descending sort; the empty string means DefaultOrdering.
// A page size of 0 means DefaultPerPage; out-of-range values are errors,
// as are unknown ordering columns and status values other than 0 and 1.
func NewListOrdersQuery(
	actorID kernel.UUID,
	actorRole user.Role,
	status *int,
	ordering string,
	page, perPage int,
) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}

	if err := actorID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	if err := errors.Join(
		listQuery.setStatus(status),
		listQuery.setOrdering(ordering),
		listQuery.setPage(page),
		listQuery.setPerPage(perPage),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the user listing orders.
func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role of the user listing orders.
func (q ListOrdersQuery) ActorRole() user.Role {
	return q.actorRole
}

// Status returns the status filter, or nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderBy returns the whitelisted sort column.
func (q ListOrdersQuery) OrderBy() string {
	return q.orderBy
}

// Descending reports whether the sort direction is descending.
func (q ListOrdersQuery) Descending() bool {
	return q.descending
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q ListOrdersQuery) PerPage() int {
	return q.perPage
}

func (q *ListOrdersQuery) setStatus(status *int) error {
	if status == nil {
		return nil
	}

	filter, err := order.StatusFromInt(*status)
	if err != nil {
		return err
	}

	q.status = &filter
	return nil
}

func (q *ListOrdersQuery) setOrdering(ordering string) error {
	if ordering == "" {
		ordering = DefaultOrdering
	}

	column := ordering
	if strings.HasPrefix(ordering, "-") {
		q.descending = true
		column = ordering[1:]
	}

	safeColumn, ok := orderingColumns()[column]
	if !ok {
		return errs.NewValueIsInvalidError("ordering")
	}

	q.orderBy = safeColumn
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page == 0 {
		page = 1
	}

	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, "unlimited")
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setPerPage(perPage int) error {
	if perPage == 0 {
		perPage = DefaultPerPage
	}

	if perPage < 1 || perPage > MaxPerPage {
		return errs.NewValueIsOutOfRangeError("per_page", perPage, 1, MaxPerPage)
	}

	q.perPage = perPage
	return nil
}

// OrderItemResponse is one immutable order line.
type OrderItemResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}

// OrderResponse is the order view shared by the list and detail queries.
type OrderResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	DeliveryCrewID *kernel.UUID
	Status         int
	Total          kernel.Money
	Date           time.Time
	Items          []OrderItemResponse
}

// ListOrdersQueryResponse is one page of orders plus the pre-pagination
// match count.
type ListOrdersQueryResponse struct {
	Total   int64
	Page    int
	PerPage int
	Orders  []OrderResponse
}
