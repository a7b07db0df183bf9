package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Happy-path stubs for the command-side units of work. The removal and
// clear endpoints answer 200 with a message body rather than 204, so these
// tests drive the handlers through stubbed transactions and pin the wire
// shape of the responses.

type stubCartRepository struct{ cart *cart.Cart }

func (s *stubCartRepository) Add(context.Context, *cart.Cart) error    { return nil }
func (s *stubCartRepository) Update(context.Context, *cart.Cart) error { return nil }

func (s *stubCartRepository) GetByUserID(_ context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if s.cart == nil {
		return nil, errs.NewObjectNotFoundError("cart", userID.String())
	}
	return s.cart, nil
}

func (s *stubCartRepository) DeleteItemsIdleSince(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type stubOrderRepository struct{}

func (stubOrderRepository) Add(context.Context, *order.Order) error    { return nil }
func (stubOrderRepository) Update(context.Context, *order.Order) error { return nil }

func (stubOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	return nil, errs.NewObjectNotFoundError("orderId", id.String())
}

func (stubOrderRepository) Delete(context.Context, kernel.UUID) error { return nil }

type stubMenuItemRepository struct{}

func (stubMenuItemRepository) Add(context.Context, *catalog.MenuItem) error    { return nil }
func (stubMenuItemRepository) Update(context.Context, *catalog.MenuItem) error { return nil }

func (stubMenuItemRepository) Get(_ context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	return nil, errs.NewObjectNotFoundError("menuItemId", id.String())
}

func (stubMenuItemRepository) GetByTitle(_ context.Context, title string) (*catalog.MenuItem, error) {
	return nil, errs.NewObjectNotFoundError("title", title)
}

func (stubMenuItemRepository) Delete(context.Context, kernel.UUID) error { return nil }

type stubUserRepository struct{ account *user.User }

func (s *stubUserRepository) Add(context.Context, *user.User) error    { return nil }
func (s *stubUserRepository) Update(context.Context, *user.User) error { return nil }

func (s *stubUserRepository) Get(context.Context, kernel.UUID) (*user.User, error) {
	return s.account, nil
}

func (s *stubUserRepository) GetByUsername(context.Context, string) (*user.User, error) {
	return s.account, nil
}

type stubTx struct{}

func (stubTx) Begin(context.Context) error    { return nil }
func (stubTx) Commit(context.Context) error   { return nil }
func (stubTx) Rollback(context.Context) error { return nil }

type stubCartUoW struct {
	stubTx
	carts ports.CartRepository
}

func (s stubCartUoW) CartRepository() ports.CartRepository         { return s.carts }
func (s stubCartUoW) MenuItemRepository() ports.MenuItemRepository { return stubMenuItemRepository{} }

type stubCartUoWFactory struct{ uow stubCartUoW }

func (s stubCartUoWFactory) Create() commands.CartUoW { return s.uow }

type stubOrderUoW struct{ stubTx }

func (stubOrderUoW) OrderRepository() ports.OrderRepository { return stubOrderRepository{} }
func (stubOrderUoW) UserRepository() ports.UserRepository   { return &stubUserRepository{} }

type stubOrderUoWFactory struct{}

func (stubOrderUoWFactory) Create() commands.OrderUoW { return stubOrderUoW{} }

type stubCatalogUoW struct{ stubTx }

func (stubCatalogUoW) MenuItemRepository() ports.MenuItemRepository { return stubMenuItemRepository{} }
func (stubCatalogUoW) CategoryRepository() ports.CategoryRepository { return nil }

type stubCatalogUoWFactory struct{}

func (stubCatalogUoWFactory) Create() commands.CatalogUoW { return stubCatalogUoW{} }

type stubUserUoW struct {
	stubTx
	users ports.UserRepository
}

func (s stubUserUoW) UserRepository() ports.UserRepository { return s.users }

type stubUserUoWFactory struct{ uow stubUserUoW }

func (s stubUserUoWFactory) Create() commands.UserUoW { return s.uow }

// newEchoContext builds a request context carrying an authenticated caller.
func newEchoContext(t *testing.T, method, target, body string, role user.Role) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	ctx := echo.New().NewContext(req, rec)
	ctx.Set(contextKeyUserID, kernel.NewUUID())
	ctx.Set(contextKeyUserRole, role)
	return ctx, rec
}

func TestServer_ClearCart_RespondsWithMessage(t *testing.T) {
	server := &Server{
		clearCartHandler: commands.NewClearCartCommandHandler(
			stubCartUoWFactory{uow: stubCartUoW{carts: &stubCartRepository{}}}),
	}
	ctx, rec := newEchoContext(t, http.MethodDelete, "/cart/menu-items", "", user.Customer)

	require.NoError(t, server.ClearCart(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"cart cleared"}`, rec.Body.String())
}

func TestServer_RemoveCartItem_RespondsWithMessage(t *testing.T) {
	userCart, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	price, err := kernel.MoneyFromString("6.50")
	require.NoError(t, err)
	cartItemID := kernel.NewUUID()
	require.NoError(t, userCart.AddItem(cartItemID, kernel.NewUUID(), price, 1))

	server := &Server{
		removeCartItemHandler: commands.NewRemoveCartItemCommandHandler(
			stubCartUoWFactory{uow: stubCartUoW{carts: &stubCartRepository{cart: userCart}}}),
	}
	ctx, rec := newEchoContext(t, http.MethodDelete, "/cart/menu-items/"+cartItemID.String(), "", user.Customer)
	ctx.SetParamNames("id")
	ctx.SetParamValues(cartItemID.String())

	require.NoError(t, server.RemoveCartItem(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"cart item removed"}`, rec.Body.String())
}

func TestServer_DeleteOrder_RespondsWithMessage(t *testing.T) {
	server := &Server{
		deleteOrderHandler: commands.NewDeleteOrderCommandHandler(stubOrderUoWFactory{}),
	}
	orderID := kernel.NewUUID()
	ctx, rec := newEchoContext(t, http.MethodDelete, "/orders/"+orderID.String(), "", user.Manager)
	ctx.SetParamNames("id")
	ctx.SetParamValues(orderID.String())

	require.NoError(t, server.DeleteOrder(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"order deleted"}`, rec.Body.String())
}

func TestServer_DeleteMenuItem_RespondsWithMessage(t *testing.T) {
	server := &Server{
		deleteMenuItemHandler: commands.NewDeleteMenuItemCommandHandler(stubCatalogUoWFactory{}),
	}
	menuItemID := kernel.NewUUID()
	ctx, rec := newEchoContext(t, http.MethodDelete, "/menu-items/"+menuItemID.String(), "", user.Manager)
	ctx.SetParamNames("id")
	ctx.SetParamValues(menuItemID.String())

	require.NoError(t, server.DeleteMenuItem(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"menu item deleted"}`, rec.Body.String())
}

func TestServer_AddGroupMember_RespondsWithCreatedMessage(t *testing.T) {
	account, err := user.NewUser(kernel.NewUUID(), "sam", "sam@example.com", "$2a$10$hash")
	require.NoError(t, err)

	server := &Server{
		assignRoleHandler: commands.NewAssignRoleCommandHandler(
			stubUserUoWFactory{uow: stubUserUoW{users: &stubUserRepository{account: account}}}),
	}
	ctx, rec := newEchoContext(t, http.MethodPost, "/groups/delivery-crew/users",
		`{"username":"sam"}`, user.Manager)

	require.NoError(t, server.AddDeliveryCrew(ctx))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"user added to group"}`, rec.Body.String())
	assert.Equal(t, user.DeliveryCrew, account.Role())
}

func TestServer_RemoveGroupMember_RespondsWithMessage(t *testing.T) {
	account, err := user.NewUser(kernel.NewUUID(), "sam", "sam@example.com", "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, account.AssignRole(user.DeliveryCrew))

	server := &Server{
		revokeRoleHandler: commands.NewRevokeRoleCommandHandler(
			stubUserUoWFactory{uow: stubUserUoW{users: &stubUserRepository{account: account}}}),
	}
	ctx, rec := newEchoContext(t, http.MethodDelete, "/groups/delivery-crew/users/"+account.ID().String(),
		"", user.Manager)
	ctx.SetParamNames("id")
	ctx.SetParamValues(account.ID().String())

	require.NoError(t, server.RemoveDeliveryCrew(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"user removed from group"}`, rec.Body.String())
	assert.Equal(t, user.Customer, account.Role())
}
