package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/pkg/errs"
)

// Server wires HTTP requests to application use cases. It owns no business
// rules itself: it parses, dispatches and renders.
type Server struct {
	authenticator *Authenticator

	// Command handlers
	addCartItemHandler    commands.AddCartItemCommandHandler
	removeCartItemHandler commands.RemoveCartItemCommandHandler
	clearCartHandler      commands.ClearCartCommandHandler
	checkoutHandler       commands.CheckoutCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	createMenuItemHandler commands.CreateMenuItemCommandHandler
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler commands.DeleteMenuItemCommandHandler
	registerUserHandler   commands.RegisterUserCommandHandler
	assignRoleHandler     commands.AssignRoleCommandHandler
	revokeRoleHandler     commands.RevokeRoleCommandHandler

	// Query handlers
	getCartHandler          queries.GetCartQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	listMenuItemsHandler    queries.ListMenuItemsQueryHandler
	getMenuItemHandler      queries.GetMenuItemQueryHandler
	getCategoryHandler      queries.GetCategoryQueryHandler
	getUserHandler          queries.GetUserQueryHandler
	listGroupMembersHandler queries.ListGroupMembersQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	authenticator *Authenticator,
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	deleteMenuItemHandler commands.DeleteMenuItemCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	assignRoleHandler commands.AssignRoleCommandHandler,
	revokeRoleHandler commands.RevokeRoleCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listMenuItemsHandler queries.ListMenuItemsQueryHandler,
	getMenuItemHandler queries.GetMenuItemQueryHandler,
	getCategoryHandler queries.GetCategoryQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	listGroupMembersHandler queries.ListGroupMembersQueryHandler,
) *Server {
	return &Server{
		authenticator:           authenticator,
		addCartItemHandler:      addCartItemHandler,
		removeCartItemHandler:   removeCartItemHandler,
		clearCartHandler:        clearCartHandler,
		checkoutHandler:         checkoutHandler,
		updateOrderHandler:      updateOrderHandler,
		deleteOrderHandler:      deleteOrderHandler,
		createMenuItemHandler:   createMenuItemHandler,
		updateMenuItemHandler:   updateMenuItemHandler,
		deleteMenuItemHandler:   deleteMenuItemHandler,
		registerUserHandler:     registerUserHandler,
		assignRoleHandler:       assignRoleHandler,
		revokeRoleHandler:       revokeRoleHandler,
		getCartHandler:          getCartHandler,
		getOrderHandler:         getOrderHandler,
		listOrdersHandler:       listOrdersHandler,
		listMenuItemsHandler:    listMenuItemsHandler,
		getMenuItemHandler:      getMenuItemHandler,
		getCategoryHandler:      getCategoryHandler,
		getUserHandler:          getUserHandler,
		listGroupMembersHandler: listGroupMembersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the Echo instance. Public routes
// come first, everything else sits behind the bearer token middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/users", s.Register)
	e.POST("/auth/token", s.Login)

	e.GET("/menu-items", s.ListMenuItems)
	e.GET("/menu-items/:id", s.GetMenuItem)
	e.GET("/categories/:id", s.GetCategory)

	authenticated := e.Group("", s.authenticator.Middleware())

	authenticated.GET("/me", s.Me)

	authenticated.GET("/cart/menu-items", s.GetCart)
	authenticated.POST("/cart/menu-items", s.AddCartItem)
	authenticated.DELETE("/cart/menu-items", s.ClearCart)
	authenticated.DELETE("/cart/menu-items/:id", s.RemoveCartItem)

	authenticated.GET("/orders", s.ListOrders)
	authenticated.POST("/orders", s.Checkout)
	authenticated.GET("/orders/:id", s.GetOrder)
	authenticated.PUT("/orders/:id", s.UpdateOrder)
	authenticated.PATCH("/orders/:id", s.UpdateOrder)
	authenticated.DELETE("/orders/:id", s.DeleteOrder)

	authenticated.POST("/menu-items", s.CreateMenuItem)
	authenticated.PUT("/menu-items/:id", s.UpdateMenuItem)
	authenticated.PATCH("/menu-items/:id", s.UpdateMenuItem)
	authenticated.DELETE("/menu-items/:id", s.DeleteMenuItem)

	authenticated.GET("/groups/manager/users", s.ListManagers)
	authenticated.POST("/groups/manager/users", s.AddManager)
	authenticated.DELETE("/groups/manager/users/:id", s.RemoveManager)
	authenticated.GET("/groups/delivery-crew/users", s.ListDeliveryCrew)
	authenticated.POST("/groups/delivery-crew/users", s.AddDeliveryCrew)
	authenticated.DELETE("/groups/delivery-crew/users/:id", s.RemoveDeliveryCrew)
}

// Register handles POST /auth/users - creates a customer account.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, request.Username, request.Email, request.Password)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, UserAccount{
		ID:       userID.String(),
		Username: request.Username,
		Email:    request.Email,
		Role:     user.Customer.String(),
	})
}

// Login handles POST /auth/token - exchanges credentials for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	token, err := s.authenticator.Login(ctx, request.Username, request.Password)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, token)
}

// Me handles GET /me - returns the caller's own profile.
func (s *Server) Me(ctx echo.Context) error {
	query, err := queries.NewGetUserQuery(callerID(ctx))
	if err != nil {
		return problem(ctx, err)
	}

	account, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserAccount(account))
}

// GetCart handles GET /cart/menu-items - returns the caller's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	if callerRole(ctx) != user.Customer {
		return forbidden(ctx, "only customers have a cart")
	}

	query, err := queries.NewGetCartQuery(callerID(ctx))
	if err != nil {
		return problem(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCart(cart))
}

// AddCartItem handles POST /cart/menu-items - adds a menu item to the cart
// and returns the updated cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	if callerRole(ctx) != user.Customer {
		return forbidden(ctx, "only customers have a cart")
	}

	var request AddCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	menuItemID, err := parseUUID("menu_item_id", request.MenuItemID)
	if err != nil {
		return problem(ctx, err)
	}

	quantity := 1
	if request.Quantity != nil {
		quantity = *request.Quantity
	}

	cmd, err := commands.NewAddCartItemCommand(callerID(ctx), menuItemID, quantity)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.renderCart(ctx, http.StatusCreated)
}

// ClearCart handles DELETE /cart/menu-items - removes every line from the
// caller's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	if callerRole(ctx) != user.Customer {
		return forbidden(ctx, "only customers have a cart")
	}

	cmd, err := commands.NewClearCartCommand(callerID(ctx))
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "cart cleared"})
}

// RemoveCartItem handles DELETE /cart/menu-items/:id - removes one cart line.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	if callerRole(ctx) != user.Customer {
		return forbidden(ctx, "only customers have a cart")
	}

	cartItemID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(callerID(ctx), cartItemID)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "cart item removed"})
}

func (s *Server) renderCart(ctx echo.Context, status int) error {
	query, err := queries.NewGetCartQuery(callerID(ctx))
	if err != nil {
		return problem(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(status, toCart(cart))
}

// ListOrders handles GET /orders - returns the page of orders visible to
// the caller's role.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *int
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "status must be an integer")
		}
		status = &parsed
	}

	page, err := intQueryParam(ctx, "page")
	if err != nil {
		return badRequest(ctx, "page must be an integer")
	}
	perPage, err := intQueryParam(ctx, "per_page")
	if err != nil {
		return badRequest(ctx, "per_page must be an integer")
	}

	query, err := queries.NewListOrdersQuery(
		callerID(ctx),
		callerRole(ctx),
		status,
		ctx.QueryParam("ordering"),
		page,
		perPage,
	)
	if err != nil {
		return problem(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrdersPage(orders))
}

// Checkout handles POST /orders - converts the caller's cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	if callerRole(ctx) != user.Customer {
		return forbidden(ctx, "only customers can place orders")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(callerID(ctx), orderID)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.renderOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /orders/:id - returns one order the caller may see.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	return s.renderOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrder handles PUT and PATCH /orders/:id - assigns delivery crew
// and moves the status. Both verbs apply partial updates.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var crewID *kernel.UUID
	if request.DeliveryCrewID != nil {
		parsed, err := parseUUID("delivery_crew_id", *request.DeliveryCrewID)
		if err != nil {
			return problem(ctx, err)
		}
		crewID = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(
		callerID(ctx),
		callerRole(ctx),
		orderID,
		crewID,
		request.Status,
	)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.renderOrder(ctx, orderID, http.StatusOK)
}

// DeleteOrder handles DELETE /orders/:id - removes an order entirely.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(callerRole(ctx), orderID)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "order deleted"})
}

func (s *Server) renderOrder(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(callerID(ctx), callerRole(ctx), orderID)
	if err != nil {
		return problem(ctx, err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(status, toOrder(order))
}

// ListMenuItems handles GET /menu-items - returns the catalog, narrowed by
// the optional ordering, search, category and price query parameters.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	var price *kernel.Money
	if raw := ctx.QueryParam("price"); raw != "" {
		parsed, err := kernel.MoneyFromString(raw)
		if err != nil {
			return badRequest(ctx, "price must be a decimal amount")
		}
		price = &parsed
	}

	query, err := queries.NewListMenuItemsQuery(
		ctx.QueryParam("ordering"),
		ctx.QueryParam("search"),
		ctx.QueryParam("category"),
		price,
	)
	if err != nil {
		return problem(ctx, err)
	}

	menuItems, err := s.listMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]MenuItem, len(menuItems))
	for i, menuItem := range menuItems {
		response[i] = toMenuItem(menuItem)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /menu-items/:id - returns one catalog entry.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	menuItemID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewGetMenuItemQuery(menuItemID)
	if err != nil {
		return problem(ctx, err)
	}

	menuItem, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItem(menuItem))
}

// CreateMenuItem handles POST /menu-items - adds a catalog entry.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var request CreateMenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.MoneyFromString(request.Price)
	if err != nil {
		return problem(ctx, err)
	}
	categoryID, err := parseUUID("category_id", request.CategoryID)
	if err != nil {
		return problem(ctx, err)
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(
		callerRole(ctx),
		menuItemID,
		request.Title,
		price,
		request.Inventory,
		categoryID,
	)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.renderMenuItem(ctx, menuItemID, http.StatusCreated)
}

// UpdateMenuItem handles PUT and PATCH /menu-items/:id - partially updates
// a catalog entry.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	menuItemID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	var request UpdateMenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var price *kernel.Money
	if request.Price != nil {
		parsed, err := kernel.MoneyFromString(*request.Price)
		if err != nil {
			return problem(ctx, err)
		}
		price = &parsed
	}

	var categoryID *kernel.UUID
	if request.CategoryID != nil {
		parsed, err := parseUUID("category_id", *request.CategoryID)
		if err != nil {
			return problem(ctx, err)
		}
		categoryID = &parsed
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		callerRole(ctx),
		menuItemID,
		request.Title,
		price,
		request.Inventory,
		categoryID,
	)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.renderMenuItem(ctx, menuItemID, http.StatusOK)
}

// DeleteMenuItem handles DELETE /menu-items/:id - removes a catalog entry.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	menuItemID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(callerRole(ctx), menuItemID)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "menu item deleted"})
}

func (s *Server) renderMenuItem(ctx echo.Context, menuItemID kernel.UUID, status int) error {
	query, err := queries.NewGetMenuItemQuery(menuItemID)
	if err != nil {
		return problem(ctx, err)
	}

	menuItem, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(status, toMenuItem(menuItem))
}

// GetCategory handles GET /categories/:id - returns one menu category.
func (s *Server) GetCategory(ctx echo.Context) error {
	categoryID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewGetCategoryQuery(categoryID)
	if err != nil {
		return problem(ctx, err)
	}

	category, err := s.getCategoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCategory(category))
}

// ListManagers handles GET /groups/manager/users.
func (s *Server) ListManagers(ctx echo.Context) error {
	return s.listGroupMembers(ctx, user.Manager)
}

// AddManager handles POST /groups/manager/users.
func (s *Server) AddManager(ctx echo.Context) error {
	return s.addGroupMember(ctx, user.Manager)
}

// RemoveManager handles DELETE /groups/manager/users/:id.
func (s *Server) RemoveManager(ctx echo.Context) error {
	return s.removeGroupMember(ctx, user.Manager)
}

// ListDeliveryCrew handles GET /groups/delivery-crew/users.
func (s *Server) ListDeliveryCrew(ctx echo.Context) error {
	return s.listGroupMembers(ctx, user.DeliveryCrew)
}

// AddDeliveryCrew handles POST /groups/delivery-crew/users.
func (s *Server) AddDeliveryCrew(ctx echo.Context) error {
	return s.addGroupMember(ctx, user.DeliveryCrew)
}

// RemoveDeliveryCrew handles DELETE /groups/delivery-crew/users/:id.
func (s *Server) RemoveDeliveryCrew(ctx echo.Context) error {
	return s.removeGroupMember(ctx, user.DeliveryCrew)
}

func (s *Server) listGroupMembers(ctx echo.Context, role user.Role) error {
	query, err := queries.NewListGroupMembersQuery(callerRole(ctx), role)
	if err != nil {
		return problem(ctx, err)
	}

	members, err := s.listGroupMembersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]GroupMember, len(members))
	for i, member := range members {
		response[i] = toGroupMember(member)
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) addGroupMember(ctx echo.Context, role user.Role) error {
	var request GroupMemberRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignRoleCommand(callerRole(ctx), request.Username, role)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.assignRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Message{Message: "user added to group"})
}

func (s *Server) removeGroupMember(ctx echo.Context, role user.Role) error {
	userID, err := parseUUID("id", ctx.Param("id"))
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewRevokeRoleCommand(callerRole(ctx), userID, role)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.revokeRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "user removed from group"})
}

// parseUUID turns a path or body identifier into a kernel.UUID, mapping
// malformed input to a 400-class error.
func parseUUID(paramName, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
