package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message is the body of mutations that have no resource to return,
// such as deletes.
type Message struct {
	Message string `json:"message"`
}

// AddCartItemRequest is the body of POST /cart/menu-items.
// Quantity defaults to 1 when omitted.
type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   *int   `json:"quantity"`
}

// CartItem is one cart line on the wire. Monetary values are fixed-point
// decimal strings.
type CartItem struct {
	ID            string `json:"id"`
	MenuItemID    string `json:"menu_item_id"`
	MenuItemTitle string `json:"menu_item_title"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	Price         string `json:"price"`
}

// Cart is the caller's cart: its lines plus the grand total.
type Cart struct {
	Items []CartItem `json:"items"`
	Total string     `json:"total"`
}

// OrderItem is one immutable order line on the wire.
type OrderItem struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Price      string `json:"price"`
}

// Order is the order view shared by the list and detail endpoints.
type Order struct {
	ID             string      `json:"id"`
	CustomerID     string      `json:"customer_id"`
	DeliveryCrewID *string     `json:"delivery_crew_id"`
	Status         int         `json:"status"`
	Total          string      `json:"total"`
	Date           time.Time   `json:"date"`
	Items          []OrderItem `json:"items"`
}

// OrdersPage is one page of orders plus the pre-pagination match count.
type OrdersPage struct {
	Total   int64   `json:"total"`
	Page    int     `json:"page"`
	PerPage int     `json:"per_page"`
	Orders  []Order `json:"orders"`
}

// UpdateOrderRequest is the body of PUT/PATCH /orders/:id.
// Absent fields leave the order untouched.
type UpdateOrderRequest struct {
	DeliveryCrewID *string `json:"delivery_crew_id"`
	Status         *int    `json:"status"`
}

// MenuItem is a catalog entry on the wire.
type MenuItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	Inventory     int    `json:"inventory"`
	CategoryID    string `json:"category_id"`
	CategorySlug  string `json:"category_slug"`
	CategoryTitle string `json:"category_title"`
}

// CreateMenuItemRequest is the body of POST /menu-items.
type CreateMenuItemRequest struct {
	Title      string `json:"title"`
	Price      string `json:"price"`
	Inventory  int    `json:"inventory"`
	CategoryID string `json:"category_id"`
}

// UpdateMenuItemRequest is the body of PUT/PATCH /menu-items/:id.
// Absent fields keep their stored values.
type UpdateMenuItemRequest struct {
	Title      *string `json:"title"`
	Price      *string `json:"price"`
	Inventory  *int    `json:"inventory"`
	CategoryID *string `json:"category_id"`
}

// Category is a menu category on the wire.
type Category struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// RegisterRequest is the body of POST /auth/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token carries an issued access token.
type Token struct {
	AccessToken string `json:"access_token"`
}

// UserAccount is the caller-visible account profile.
type UserAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// GroupMember is one account in a role group listing.
type GroupMember struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GroupMemberRequest is the body of POST /groups/<group>/users.
type GroupMemberRequest struct {
	Username string `json:"username"`
}

func toCart(response queries.GetCartQueryResponse) Cart {
	items := make([]CartItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = CartItem{
			ID:            item.ID.String(),
			MenuItemID:    item.MenuItemID.String(),
			MenuItemTitle: item.MenuItemTitle,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.String(),
			Price:         item.Price.String(),
		}
	}
	return Cart{Items: items, Total: response.Total.String()}
}

func toOrder(response queries.OrderResponse) Order {
	items := make([]OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = OrderItem{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
			Price:      item.Price.String(),
		}
	}

	var crewID *string
	if response.DeliveryCrewID != nil {
		raw := response.DeliveryCrewID.String()
		crewID = &raw
	}

	return Order{
		ID:             response.ID.String(),
		CustomerID:     response.CustomerID.String(),
		DeliveryCrewID: crewID,
		Status:         response.Status,
		Total:          response.Total.String(),
		Date:           response.Date,
		Items:          items,
	}
}

func toOrdersPage(response queries.ListOrdersQueryResponse) OrdersPage {
	orders := make([]Order, len(response.Orders))
	for i, order := range response.Orders {
		orders[i] = toOrder(order)
	}
	return OrdersPage{
		Total:   response.Total,
		Page:    response.Page,
		PerPage: response.PerPage,
		Orders:  orders,
	}
}

func toMenuItem(response queries.MenuItemResponse) MenuItem {
	return MenuItem{
		ID:            response.ID.String(),
		Title:         response.Title,
		Price:         response.Price.String(),
		Inventory:     response.Inventory,
		CategoryID:    response.CategoryID.String(),
		CategorySlug:  response.CategorySlug,
		CategoryTitle: response.CategoryTitle,
	}
}

func toCategory(response queries.CategoryResponse) Category {
	return Category{
		ID:    response.ID.String(),
		Slug:  response.Slug,
		Title: response.Title,
	}
}

func toUserAccount(response queries.UserAccountResponse) UserAccount {
	return UserAccount{
		ID:       response.ID.String(),
		Username: response.Username,
		Email:    response.Email,
		Role:     response.Role.String(),
	}
}

func toGroupMember(response queries.UserAccountResponse) GroupMember {
	return GroupMember{
		ID:       response.ID.String(),
		Username: response.Username,
		Email:    response.Email,
	}
}
