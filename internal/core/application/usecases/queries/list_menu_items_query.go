package queries

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// DefaultMenuOrdering sorts the menu alphabetically.
const DefaultMenuOrdering = "title"

// menuOrderingColumns whitelists the sortable columns of the menu listing.
// Anything outside this set is rejected before it can reach the SQL text.
func menuOrderingColumns() map[string]string {
	return map[string]string{
		"title":     "mi.title",
		"price":     "mi.price",
		"inventory": "mi.inventory",
		"category":  "c.title",
	}
}

// ListMenuItemsQuery retrieves the menu, optionally narrowed by a title
// search, a category filter or an exact price, and sorted by a whitelisted
// column. This is the public browse endpoint, no caller identity involved.
//
// Example:
//
//	query, err := NewListMenuItemsQuery("-price", "lemon", "", nil)
//	if err != nil {
//	    return err
//	}
//
//	items, err := NewListMenuItemsQueryHandler(db).Handle(ctx, query)
type ListMenuItemsQuery struct {
	orderBy    string
	descending bool
	search     string
	category   string
	price      *kernel.Money

	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery creates a query for the menu listing.
//
// The ordering parameter names a whitelisted column, optionally prefixed
// with "-" for descending sort; the empty string means DefaultMenuOrdering.
// A non-empty search matches item and category titles case-insensitively,
// category filters by exact category title, and price by exact price.
func NewListMenuItemsQuery(
	ordering, search, category string,
	price *kernel.Money,
) (ListMenuItemsQuery, error) {
	listQuery := ListMenuItemsQuery{
		search:   strings.TrimSpace(search),
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setOrdering(ordering),
		listQuery.setPrice(price),
	); err != nil {
		return ListMenuItemsQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// OrderBy returns the whitelisted sort column.
func (q ListMenuItemsQuery) OrderBy() string {
	return q.orderBy
}

// Descending reports whether the sort direction is descending.
func (q ListMenuItemsQuery) Descending() bool {
	return q.descending
}

// Search returns the title search term, or the empty string.
func (q ListMenuItemsQuery) Search() string {
	return q.search
}

// Category returns the category title filter, or the empty string.
func (q ListMenuItemsQuery) Category() string {
	return q.category
}

// Price returns the exact price filter, or nil when unfiltered.
func (q ListMenuItemsQuery) Price() *kernel.Money {
	return q.price
}

func (q *ListMenuItemsQuery) setOrdering(ordering string) error {
	if ordering == "" {
		ordering = DefaultMenuOrdering
	}

	column := ordering
	if strings.HasPrefix(ordering, "-") {
		q.descending = true
		column = ordering[1:]
	}

	safeColumn, ok := menuOrderingColumns()[column]
	if !ok {
		return errs.NewValueIsInvalidError("ordering")
	}

	q.orderBy = safeColumn
	return nil
}

func (q *ListMenuItemsQuery) setPrice(price *kernel.Money) error {
	if price == nil {
		return nil
	}

	if err := price.Validate(); err != nil {
		return err
	}

	q.price = price
	return nil
}

// MenuItemResponse is a menu item with its category resolved for display.
type MenuItemResponse struct {
	ID            kernel.UUID
	Title         string
	Price         kernel.Money
	Inventory     int
	CategoryID    kernel.UUID
	CategorySlug  string
	CategoryTitle string
}
