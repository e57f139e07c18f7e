package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apiadmin "github.com/echo-commerce/echo-commerce/api/types/admin"
	apicarts "github.com/echo-commerce/echo-commerce/api/types/carts"
	apiorders "github.com/echo-commerce/echo-commerce/api/types/orders"
	apiproducts "github.com/echo-commerce/echo-commerce/api/types/products"
	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	kprof "github.com/echo-commerce/echo-commerce/cmd/ec/config/profiles"
	"github.com/echo-commerce/echo-commerce/pkg/utils"
)

// ErrUnauthorized is returned when the backend rejects the bearer token
// (missing, expired or invalid).
//
// The transport layer does NOT react to it by itself. Callers decide what
// to do; typically, drop the stored token and ask the user to log in again.
var ErrUnauthorized = errors.New("authentication required")

// Client is a client of the Echo-Commerce backend API.
//
// Each method is a single request/response pair against a fixed path and
// verb. When the profile holds a token, it is attached as a bearer token.
// Nothing is retried; errors propagate to the caller.
type Client interface {
	// Register creates a new account and logs it in.
	//
	// # Args
	//
	// - context.Context
	//
	// - username, password: credentials of the new account
	//
	// # Returns
	//
	// - apiusers.AuthResponse: issued token and the created user
	//
	// - error
	Register(ctx context.Context, username, password string) (apiusers.AuthResponse, error)

	// Login exchanges credentials for a token+user pair.
	Login(ctx context.Context, username, password string) (apiusers.AuthResponse, error)

	// CurrentUser resolves the stored token to a user record.
	//
	// Returns ErrUnauthorized when the token is missing or stale.
	CurrentUser(ctx context.Context) (apiusers.Detail, error)

	// FindProducts lists catalog products.
	//
	// # Args
	//
	// - skip: number of products to skip from the head of the catalog
	//
	// - limit: maximum number of products to return
	FindProducts(ctx context.Context, skip, limit int) ([]apiproducts.Detail, error)

	// GetProduct gets a product by id.
	GetProduct(ctx context.Context, productId string) (apiproducts.Detail, error)

	// RegisterProduct creates a new product. Admin only.
	RegisterProduct(ctx context.Context, spec apiproducts.Spec) (apiproducts.Detail, error)

	// UpdateProduct overwrites a product. Admin only.
	UpdateProduct(ctx context.Context, productId string, spec apiproducts.Spec) (apiproducts.Detail, error)

	// DeleteProduct deletes a product. Admin only.
	DeleteProduct(ctx context.Context, productId string) error

	// GetCart fetches the whole cart of the logged-in user.
	//
	// This is the only way to observe cart state. Mutating operations do
	// not return enough to update a local copy; re-fetch after each one.
	GetCart(ctx context.Context) (apicarts.Detail, error)

	// AddCartItem puts quantity pieces of a product into the cart.
	// Quantities of an existing line accumulate.
	AddCartItem(ctx context.Context, productId string, quantity int) (apicarts.Item, error)

	// UpdateCartItem sets the quantity of a cart line.
	//
	// Quantity <= 0 is defined to be equivalent to RemoveCartItem.
	UpdateCartItem(ctx context.Context, itemId string, quantity int) error

	// RemoveCartItem deletes a cart line.
	//
	// Removing a line which is already gone is not an error.
	RemoveCartItem(ctx context.Context, itemId string) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context) error

	// CreateOrder converts the current cart into an order, as one opaque
	// step. The cart is emptied on success.
	CreateOrder(ctx context.Context) (apiorders.Detail, error)

	// FindOrders lists the orders of the logged-in user, newest first.
	FindOrders(ctx context.Context) ([]apiorders.Summary, error)

	// GetOrder gets one of the logged-in user's orders by id.
	GetOrder(ctx context.Context, orderId string) (apiorders.Detail, error)

	// GetStats fetches system statistics. Admin only.
	GetStats(ctx context.Context) (apiadmin.Stats, error)

	// FindUsers lists registered users. Admin only.
	FindUsers(ctx context.Context, skip, limit int) ([]apiusers.Detail, error)

	// SetUserAdmin grants or revokes the admin flag of a user. Admin only.
	//
	// The backend rejects changing the caller's own flag.
	SetUserAdmin(ctx context.Context, userId string, isAdmin bool) (apiusers.Detail, error)

	// FindAllOrders lists orders of every user. Admin only.
	FindAllOrders(ctx context.Context) ([]apiorders.Summary, error)

	// GetAnyOrder gets any user's order by id. Admin only.
	GetAnyOrder(ctx context.Context, orderId string) (apiorders.Detail, error)
}

type client struct {
	httpclient *http.Client
	api        string
	prof       *kprof.Profile
}

// create new client for a Profile.
//
// The client reads the token from the profile on every request, so a token
// stored after login is picked up without rebuilding the client.
//
// # Args
//
// - *kprof.Profile
//
// # Return
//
// - Client: created client
//
// - error: if given profile is invalid, ErrProfileInvalid is returned.
func NewClient(prof *kprof.Profile) (Client, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}

	return &client{
		httpclient: new(http.Client),
		api:        strings.TrimSuffix(prof.ApiRoot, "/"),
		prof:       prof,
	}, nil
}

// build URL with path
func (c *client) apipath(path ...string) string {
	path = utils.Map(path, func(p string) string {
		return strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
	})

	return strings.Join(append([]string{c.api}, path...), "/")
}

// send req with the bearer token attached, if the profile has one.
func (c *client) do(req *http.Request) (*http.Response, error) {
	if tok := c.prof.Token; tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return c.httpclient.Do(req)
}
