package mock

import (
	"context"
	"testing"

	apiadmin "github.com/echo-commerce/echo-commerce/api/types/admin"
	apicarts "github.com/echo-commerce/echo-commerce/api/types/carts"
	apiorders "github.com/echo-commerce/echo-commerce/api/types/orders"
	apiproducts "github.com/echo-commerce/echo-commerce/api/types/products"
	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	"github.com/echo-commerce/echo-commerce/cmd/ec/rest"
)

type CredentialArgs struct {
	Username string
	Password string
}

type PageArgs struct {
	Skip  int
	Limit int
}

type AddCartItemArgs struct {
	ProductId string
	Quantity  int
}

type UpdateCartItemArgs struct {
	ItemId   string
	Quantity int
}

type SetUserAdminArgs struct {
	UserId  string
	IsAdmin bool
}

type UpdateProductArgs struct {
	ProductId string
	Spec      apiproducts.Spec
}

func New(t *testing.T) *mockClient {
	return &mockClient{t: t}
}

type mockClient struct {
	t    *testing.T
	Impl struct {
		Register        func(ctx context.Context, username, password string) (apiusers.AuthResponse, error)
		Login           func(ctx context.Context, username, password string) (apiusers.AuthResponse, error)
		CurrentUser     func(ctx context.Context) (apiusers.Detail, error)
		FindProducts    func(ctx context.Context, skip, limit int) ([]apiproducts.Detail, error)
		GetProduct      func(ctx context.Context, productId string) (apiproducts.Detail, error)
		RegisterProduct func(ctx context.Context, spec apiproducts.Spec) (apiproducts.Detail, error)
		UpdateProduct   func(ctx context.Context, productId string, spec apiproducts.Spec) (apiproducts.Detail, error)
		DeleteProduct   func(ctx context.Context, productId string) error
		GetCart         func(ctx context.Context) (apicarts.Detail, error)
		AddCartItem     func(ctx context.Context, productId string, quantity int) (apicarts.Item, error)
		UpdateCartItem  func(ctx context.Context, itemId string, quantity int) error
		RemoveCartItem  func(ctx context.Context, itemId string) error
		ClearCart       func(ctx context.Context) error
		CreateOrder     func(ctx context.Context) (apiorders.Detail, error)
		FindOrders      func(ctx context.Context) ([]apiorders.Summary, error)
		GetOrder        func(ctx context.Context, orderId string) (apiorders.Detail, error)
		GetStats        func(ctx context.Context) (apiadmin.Stats, error)
		FindUsers       func(ctx context.Context, skip, limit int) ([]apiusers.Detail, error)
		SetUserAdmin    func(ctx context.Context, userId string, isAdmin bool) (apiusers.Detail, error)
		FindAllOrders   func(ctx context.Context) ([]apiorders.Summary, error)
		GetAnyOrder     func(ctx context.Context, orderId string) (apiorders.Detail, error)
	}
	Calls struct {
		Register        []CredentialArgs
		Login           []CredentialArgs
		CurrentUser     int
		FindProducts    []PageArgs
		GetProduct      []string
		RegisterProduct []apiproducts.Spec
		UpdateProduct   []UpdateProductArgs
		DeleteProduct   []string
		GetCart         int
		AddCartItem     []AddCartItemArgs
		UpdateCartItem  []UpdateCartItemArgs
		RemoveCartItem  []string
		ClearCart       int
		CreateOrder     int
		FindOrders      int
		GetOrder        []string
		GetStats        int
		FindUsers       []PageArgs
		SetUserAdmin    []SetUserAdminArgs
		FindAllOrders   int
		GetAnyOrder     []string
	}
}

var _ rest.Client = &mockClient{}

func (m *mockClient) Register(ctx context.Context, username, password string) (apiusers.AuthResponse, error) {
	m.t.Helper()
	m.Calls.Register = append(m.Calls.Register, CredentialArgs{username, password})
	if m.Impl.Register == nil {
		m.t.Fatal("Register is not ready to be called")
	}
	return m.Impl.Register(ctx, username, password)
}

func (m *mockClient) Login(ctx context.Context, username, password string) (apiusers.AuthResponse, error) {
	m.t.Helper()
	m.Calls.Login = append(m.Calls.Login, CredentialArgs{username, password})
	if m.Impl.Login == nil {
		m.t.Fatal("Login is not ready to be called")
	}
	return m.Impl.Login(ctx, username, password)
}

func (m *mockClient) CurrentUser(ctx context.Context) (apiusers.Detail, error) {
	m.t.Helper()
	m.Calls.CurrentUser += 1
	if m.Impl.CurrentUser == nil {
		m.t.Fatal("CurrentUser is not ready to be called")
	}
	return m.Impl.CurrentUser(ctx)
}

func (m *mockClient) FindProducts(ctx context.Context, skip, limit int) ([]apiproducts.Detail, error) {
	m.t.Helper()
	m.Calls.FindProducts = append(m.Calls.FindProducts, PageArgs{skip, limit})
	if m.Impl.FindProducts == nil {
		m.t.Fatal("FindProducts is not ready to be called")
	}
	return m.Impl.FindProducts(ctx, skip, limit)
}

func (m *mockClient) GetProduct(ctx context.Context, productId string) (apiproducts.Detail, error) {
	m.t.Helper()
	m.Calls.GetProduct = append(m.Calls.GetProduct, productId)
	if m.Impl.GetProduct == nil {
		m.t.Fatal("GetProduct is not ready to be called")
	}
	return m.Impl.GetProduct(ctx, productId)
}

func (m *mockClient) RegisterProduct(ctx context.Context, spec apiproducts.Spec) (apiproducts.Detail, error) {
	m.t.Helper()
	m.Calls.RegisterProduct = append(m.Calls.RegisterProduct, spec)
	if m.Impl.RegisterProduct == nil {
		m.t.Fatal("RegisterProduct is not ready to be called")
	}
	return m.Impl.RegisterProduct(ctx, spec)
}

func (m *mockClient) UpdateProduct(ctx context.Context, productId string, spec apiproducts.Spec) (apiproducts.Detail, error) {
	m.t.Helper()
	m.Calls.UpdateProduct = append(m.Calls.UpdateProduct, UpdateProductArgs{productId, spec})
	if m.Impl.UpdateProduct == nil {
		m.t.Fatal("UpdateProduct is not ready to be called")
	}
	return m.Impl.UpdateProduct(ctx, productId, spec)
}

func (m *mockClient) DeleteProduct(ctx context.Context, productId string) error {
	m.t.Helper()
	m.Calls.DeleteProduct = append(m.Calls.DeleteProduct, productId)
	if m.Impl.DeleteProduct == nil {
		m.t.Fatal("DeleteProduct is not ready to be called")
	}
	return m.Impl.DeleteProduct(ctx, productId)
}

func (m *mockClient) GetCart(ctx context.Context) (apicarts.Detail, error) {
	m.t.Helper()
	m.Calls.GetCart += 1
	if m.Impl.GetCart == nil {
		m.t.Fatal("GetCart is not ready to be called")
	}
	return m.Impl.GetCart(ctx)
}

func (m *mockClient) AddCartItem(ctx context.Context, productId string, quantity int) (apicarts.Item, error) {
	m.t.Helper()
	m.Calls.AddCartItem = append(m.Calls.AddCartItem, AddCartItemArgs{productId, quantity})
	if m.Impl.AddCartItem == nil {
		m.t.Fatal("AddCartItem is not ready to be called")
	}
	return m.Impl.AddCartItem(ctx, productId, quantity)
}

func (m *mockClient) UpdateCartItem(ctx context.Context, itemId string, quantity int) error {
	m.t.Helper()
	m.Calls.UpdateCartItem = append(m.Calls.UpdateCartItem, UpdateCartItemArgs{itemId, quantity})
	if m.Impl.UpdateCartItem == nil {
		m.t.Fatal("UpdateCartItem is not ready to be called")
	}
	return m.Impl.UpdateCartItem(ctx, itemId, quantity)
}

func (m *mockClient) RemoveCartItem(ctx context.Context, itemId string) error {
	m.t.Helper()
	m.Calls.RemoveCartItem = append(m.Calls.RemoveCartItem, itemId)
	if m.Impl.RemoveCartItem == nil {
		m.t.Fatal("RemoveCartItem is not ready to be called")
	}
	return m.Impl.RemoveCartItem(ctx, itemId)
}

func (m *mockClient) ClearCart(ctx context.Context) error {
	m.t.Helper()
	m.Calls.ClearCart += 1
	if m.Impl.ClearCart == nil {
		m.t.Fatal("ClearCart is not ready to be called")
	}
	return m.Impl.ClearCart(ctx)
}

func (m *mockClient) CreateOrder(ctx context.Context) (apiorders.Detail, error) {
	m.t.Helper()
	m.Calls.CreateOrder += 1
	if m.Impl.CreateOrder == nil {
		m.t.Fatal("CreateOrder is not ready to be called")
	}
	return m.Impl.CreateOrder(ctx)
}

func (m *mockClient) FindOrders(ctx context.Context) ([]apiorders.Summary, error) {
	m.t.Helper()
	m.Calls.FindOrders += 1
	if m.Impl.FindOrders == nil {
		m.t.Fatal("FindOrders is not ready to be called")
	}
	return m.Impl.FindOrders(ctx)
}

func (m *mockClient) GetOrder(ctx context.Context, orderId string) (apiorders.Detail, error) {
	m.t.Helper()
	m.Calls.GetOrder = append(m.Calls.GetOrder, orderId)
	if m.Impl.GetOrder == nil {
		m.t.Fatal("GetOrder is not ready to be called")
	}
	return m.Impl.GetOrder(ctx, orderId)
}

func (m *mockClient) GetStats(ctx context.Context) (apiadmin.Stats, error) {
	m.t.Helper()
	m.Calls.GetStats += 1
	if m.Impl.GetStats == nil {
		m.t.Fatal("GetStats is not ready to be called")
	}
	return m.Impl.GetStats(ctx)
}

func (m *mockClient) FindUsers(ctx context.Context, skip, limit int) ([]apiusers.Detail, error) {
	m.t.Helper()
	m.Calls.FindUsers = append(m.Calls.FindUsers, PageArgs{skip, limit})
	if m.Impl.FindUsers == nil {
		m.t.Fatal("FindUsers is not ready to be called")
	}
	return m.Impl.FindUsers(ctx, skip, limit)
}

func (m *mockClient) SetUserAdmin(ctx context.Context, userId string, isAdmin bool) (apiusers.Detail, error) {
	m.t.Helper()
	m.Calls.SetUserAdmin = append(m.Calls.SetUserAdmin, SetUserAdminArgs{userId, isAdmin})
	if m.Impl.SetUserAdmin == nil {
		m.t.Fatal("SetUserAdmin is not ready to be called")
	}
	return m.Impl.SetUserAdmin(ctx, userId, isAdmin)
}

func (m *mockClient) FindAllOrders(ctx context.Context) ([]apiorders.Summary, error) {
	m.t.Helper()
	m.Calls.FindAllOrders += 1
	if m.Impl.FindAllOrders == nil {
		m.t.Fatal("FindAllOrders is not ready to be called")
	}
	return m.Impl.FindAllOrders(ctx)
}

func (m *mockClient) GetAnyOrder(ctx context.Context, orderId string) (apiorders.Detail, error) {
	m.t.Helper()
	m.Calls.GetAnyOrder = append(m.Calls.GetAnyOrder, orderId)
	if m.Impl.GetAnyOrder == nil {
		m.t.Fatal("GetAnyOrder is not ready to be called")
	}
	return m.Impl.GetAnyOrder(ctx, orderId)
}
