package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apiadmin "github.com/echo-commerce/echo-commerce/api/types/admin"
	apicarts "github.com/echo-commerce/echo-commerce/api/types/carts"
	apierr "github.com/echo-commerce/echo-commerce/api/types/errors"
	apiorders "github.com/echo-commerce/echo-commerce/api/types/orders"
	apiproducts "github.com/echo-commerce/echo-commerce/api/types/products"
	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/handlers"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/token"
	httptestutil "github.com/echo-commerce/echo-commerce/internal/testutils/http"
	"github.com/echo-commerce/echo-commerce/pkg/utils/try"
)

// plainHasher avoids bcrypt's cost in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hashed string, password string) error {
	if hashed != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func newIssuer() *token.Issuer {
	return token.New([]byte("test-secret"), time.Hour)
}

func httpError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	httperr := new(echo.HTTPError)
	if !errors.As(err, &httperr) {
		t.Fatalf("not a HTTP error: %v", err)
	}
	if httperr.Code != code {
		t.Fatalf("unmatch status code: %d (expected: %d)", httperr.Code, code)
	}
	return httperr
}

func errorDetail(t *testing.T, httperr *echo.HTTPError) apierr.Detail {
	t.Helper()
	msg, ok := httperr.Message.(apierr.ErrorMessage)
	if !ok {
		t.Fatalf("error body is not an ErrorMessage: %+v", httperr.Message)
	}
	return msg.Detail
}

func TestRegisterHandler(t *testing.T) {

	t.Run("it creates an account and logs it in", func(t *testing.T) {
		s := store.New()
		issuer := newIssuer()
		testee := handlers.RegisterHandler(s, issuer, plainHasher{})

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/auth/register",
			strings.NewReader(`{"username": "alice", "password": "open sesame"}`),
			httptestutil.ContentType("application/json"),
		)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if respRec.Code != http.StatusOK {
			t.Fatalf("unmatch status code: %d", respRec.Code)
		}

		resp := apiusers.AuthResponse{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.TokenType != "bearer" {
			t.Errorf("unmatch token type: %s", resp.TokenType)
		}
		if resp.User.Username != "alice" || resp.User.IsAdmin {
			t.Errorf("unexpected user: %+v", resp.User)
		}

		subject := try.To(issuer.Verify(resp.AccessToken)).OrFatal(t)
		if subject != "alice" {
			t.Errorf("token is issued for someone else: %s", subject)
		}

		stored := try.To(s.UserByName("alice")).OrFatal(t)
		if stored.HashedPassword != "hashed:open sesame" {
			t.Errorf("password is not hashed: %s", stored.HashedPassword)
		}
	})

	t.Run("it rejects short usernames and passwords with field errors", func(t *testing.T) {
		s := store.New()
		testee := handlers.RegisterHandler(s, newIssuer(), plainHasher{})

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/auth/register",
			strings.NewReader(`{"username": "al", "password": "short"}`),
			httptestutil.ContentType("application/json"),
		)

		err := testee(c)
		httperr := httpError(t, err, http.StatusUnprocessableEntity)
		detail := errorDetail(t, httperr)

		if len(detail.Fields) != 2 {
			t.Fatalf("unexpected field errors: %+v", detail.Fields)
		}
		locs := map[string]bool{}
		for _, f := range detail.Fields {
			locs[strings.Join(f.Loc, ".")] = true
		}
		if !locs["body.username"] || !locs["body.password"] {
			t.Errorf("unexpected locs: %+v", locs)
		}
	})

	t.Run("it rejects duplicated usernames", func(t *testing.T) {
		s := store.New()
		try.To(s.NewUser("alice", "hashed:pw")).OrFatal(t)
		testee := handlers.RegisterHandler(s, newIssuer(), plainHasher{})

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/auth/register",
			strings.NewReader(`{"username": "alice", "password": "open sesame"}`),
			httptestutil.ContentType("application/json"),
		)

		err := testee(c)
		httperr := httpError(t, err, http.StatusBadRequest)
		if detail := errorDetail(t, httperr); detail.Message != "Username already registered" {
			t.Errorf("unexpected detail: %+v", detail)
		}
	})
}

func TestLoginHandler(t *testing.T) {

	newStoreWithAlice := func(t *testing.T) *store.Store {
		s := store.New()
		try.To(s.NewUser("alice", "hashed:open sesame")).OrFatal(t)
		return s
	}

	t.Run("correct credentials yield a working token", func(t *testing.T) {
		s := newStoreWithAlice(t)
		issuer := newIssuer()
		testee := handlers.LoginHandler(s, issuer, plainHasher{})

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/auth/login",
			strings.NewReader(`{"username": "alice", "password": "open sesame"}`),
			httptestutil.ContentType("application/json"),
		)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		resp := apiusers.AuthResponse{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if subject := try.To(issuer.Verify(resp.AccessToken)).OrFatal(t); subject != "alice" {
			t.Errorf("token is issued for someone else: %s", subject)
		}
	})

	theoryRejected := func(body string) func(*testing.T) {
		return func(t *testing.T) {
			s := newStoreWithAlice(t)
			testee := handlers.LoginHandler(s, newIssuer(), plainHasher{})

			e := echo.New()
			c, respRec := httptestutil.Post(
				e, "/api/auth/login", strings.NewReader(body),
				httptestutil.ContentType("application/json"),
			)

			err := testee(c)
			httperr := httpError(t, err, http.StatusUnauthorized)
			if detail := errorDetail(t, httperr); detail.Message != "Incorrect username or password" {
				t.Errorf("unexpected detail: %+v", detail)
			}
			if respRec.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Error("WWW-Authenticate challenge is missing")
			}
		}
	}

	t.Run("wrong password is rejected", theoryRejected(
		`{"username": "alice", "password": "wrong"}`,
	))
	t.Run("unknown user is rejected", theoryRejected(
		`{"username": "nobody", "password": "open sesame"}`,
	))
}

func TestAuthenticated(t *testing.T) {

	pass := func(c echo.Context) error {
		user, _ := handlers.CurrentUser(c)
		return c.JSON(http.StatusOK, user.Username)
	}

	t.Run("a valid token loads the account into the context", func(t *testing.T) {
		s := store.New()
		try.To(s.NewUser("alice", "pw")).OrFatal(t)
		issuer := newIssuer()
		tok := try.To(issuer.Issue("alice")).OrFatal(t)

		e := echo.New()
		c, respRec := httptestutil.Get(
			e, "/api/auth/me", httptestutil.Bearer(tok),
		)

		testee := handlers.Authenticated(issuer, s)(pass)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(respRec.Body.String(), "alice") {
			t.Errorf("user is not loaded: %s", respRec.Body.String())
		}
	})

	theory401 := func(build func(t *testing.T, issuer *token.Issuer) []httptestutil.RequestOption) func(*testing.T) {
		return func(t *testing.T) {
			s := store.New()
			try.To(s.NewUser("alice", "pw")).OrFatal(t)
			issuer := newIssuer()

			e := echo.New()
			c, respRec := httptestutil.Get(e, "/api/auth/me", build(t, issuer)...)

			testee := handlers.Authenticated(issuer, s)(pass)
			err := testee(c)
			httpError(t, err, http.StatusUnauthorized)
			if respRec.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Error("WWW-Authenticate challenge is missing")
			}
		}
	}

	t.Run("no authorization header is 401", theory401(
		func(*testing.T, *token.Issuer) []httptestutil.RequestOption {
			return nil
		},
	))
	t.Run("a broken token is 401", theory401(
		func(*testing.T, *token.Issuer) []httptestutil.RequestOption {
			return []httptestutil.RequestOption{httptestutil.Bearer("not.a.token")}
		},
	))
	t.Run("a token of a vanished account is 401", theory401(
		func(t *testing.T, issuer *token.Issuer) []httptestutil.RequestOption {
			tok := try.To(issuer.Issue("ghost")).OrFatal(t)
			return []httptestutil.RequestOption{httptestutil.Bearer(tok)}
		},
	))
}

func TestAdminOnly(t *testing.T) {

	pass := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	theory := func(user *store.User, expectPass bool) func(*testing.T) {
		return func(t *testing.T) {
			e := echo.New()
			c, respRec := httptestutil.Get(e, "/api/admin/stats")
			if user != nil {
				handlers.SetCurrentUser(c, *user)
			}

			err := handlers.AdminOnly(pass)(c)
			if expectPass {
				if err != nil {
					t.Fatal(err)
				}
				if respRec.Code != http.StatusOK {
					t.Errorf("unmatch status code: %d", respRec.Code)
				}
				return
			}
			httpError(t, err, http.StatusForbidden)
		}
	}

	t.Run("no account is denied", theory(nil, false))
	t.Run("a plain account is denied", theory(&store.User{Id: "user-1", Username: "alice"}, false))
	t.Run("an admin account passes", theory(&store.User{Id: "user-2", Username: "root", IsAdmin: true}, true))
}

func TestProductHandlers(t *testing.T) {

	t.Run("FindProductHandler pages the catalog", func(t *testing.T) {
		s := store.New()
		for _, name := range []string{"a", "b", "c"} {
			s.AddProduct(store.ProductSpec{Name: name, Price: decimal.NewFromInt(1)})
		}
		testee := handlers.FindProductHandler(s)

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/products?skip=1&limit=1")
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		found := []apiproducts.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &found); err != nil {
			t.Fatal(err)
		}
		if len(found) != 1 || found[0].Name != "b" {
			t.Errorf("unexpected page: %+v", found)
		}
	})

	t.Run("FindProductHandler rejects broken query values", func(t *testing.T) {
		testee := handlers.FindProductHandler(store.New())

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/products?skip=minus-one")
		err := testee(c)
		httpError(t, err, http.StatusBadRequest)
	})

	t.Run("GetProductHandler is 404 for an unknown id", func(t *testing.T) {
		testee := handlers.GetProductHandler(store.New(), "productId")

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/products/no-such")
		c.SetParamNames("productId")
		c.SetParamValues("no-such")

		err := testee(c)
		httperr := httpError(t, err, http.StatusNotFound)
		if detail := errorDetail(t, httperr); detail.Message != "Product not found" {
			t.Errorf("unexpected detail: %+v", detail)
		}
	})

	t.Run("RegisterProductHandler registers and echoes the product", func(t *testing.T) {
		s := store.New()
		testee := handlers.RegisterProductHandler(s)

		spec := apiproducts.Spec{
			Name: "Wireless Mouse", Description: "silent",
			Price: decimal.RequireFromString("99.90"), Stock: 25,
			ImageUrl: "http://example.com/mouse.png",
		}
		body := try.To(json.Marshal(spec)).OrFatal(t)

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/products", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		registered := apiproducts.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &registered); err != nil {
			t.Fatal(err)
		}
		if registered.Name != spec.Name || !registered.Price.Equal(spec.Price) {
			t.Errorf("unexpected product: %+v", registered)
		}
		if _, err := s.Product(registered.Id); err != nil {
			t.Errorf("product is not stored: %v", err)
		}
	})

	t.Run("RegisterProductHandler rejects a nameless product", func(t *testing.T) {
		testee := handlers.RegisterProductHandler(store.New())

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/products", strings.NewReader(`{"price": "10"}`),
			httptestutil.ContentType("application/json"),
		)
		err := testee(c)
		httpError(t, err, http.StatusBadRequest)
	})

	t.Run("UpdateProductHandler overwrites and stamps UpdatedAt", func(t *testing.T) {
		s := store.New()
		p := s.AddProduct(store.ProductSpec{Name: "Old", Price: decimal.NewFromInt(1)})
		testee := handlers.UpdateProductHandler(s, "productId")

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/products/"+p.Id,
			strings.NewReader(`{"name": "New", "price": "2", "stock": 1}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("productId")
		c.SetParamValues(p.Id)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		updated := apiproducts.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &updated); err != nil {
			t.Fatal(err)
		}
		if updated.Name != "New" || updated.UpdatedAt == nil {
			t.Errorf("unexpected product: %+v", updated)
		}
	})

	t.Run("DeleteProductHandler removes the product", func(t *testing.T) {
		s := store.New()
		p := s.AddProduct(store.ProductSpec{Name: "Doomed", Price: decimal.NewFromInt(1)})
		testee := handlers.DeleteProductHandler(s, "productId")

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/products/"+p.Id)
		c.SetParamNames("productId")
		c.SetParamValues(p.Id)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Product(p.Id); !errors.Is(err, store.ErrNotFound) {
			t.Errorf("product survived: %v", err)
		}
	})
}

func TestCartHandlers(t *testing.T) {

	setup := func(t *testing.T, stock int) (*store.Store, store.User, store.Product) {
		s := store.New()
		u := try.To(s.NewUser("alice", "pw")).OrFatal(t)
		p := s.AddProduct(store.ProductSpec{
			Name: "Wireless Mouse", Price: decimal.NewFromInt(99), Stock: stock,
		})
		return s, u, p
	}

	t.Run("adding in-stock products builds up the cart", func(t *testing.T) {
		s, u, p := setup(t, 5)
		testee := handlers.AddCartItemHandler(s)

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/cart/items",
			strings.NewReader(`{"product_id": "`+p.Id+`", "quantity": 2}`),
			httptestutil.ContentType("application/json"),
		)
		handlers.SetCurrentUser(c, u)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		item := apicarts.Item{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &item); err != nil {
			t.Fatal(err)
		}
		if item.Quantity != 2 || !item.Subtotal.Equal(decimal.NewFromInt(198)) {
			t.Errorf("unexpected item: %+v", item)
		}
	})

	t.Run("stock shortage on add is 400", func(t *testing.T) {
		s, u, p := setup(t, 1)
		testee := handlers.AddCartItemHandler(s)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/cart/items",
			strings.NewReader(`{"product_id": "`+p.Id+`", "quantity": 2}`),
			httptestutil.ContentType("application/json"),
		)
		handlers.SetCurrentUser(c, u)

		err := testee(c)
		httperr := httpError(t, err, http.StatusBadRequest)
		if detail := errorDetail(t, httperr); !strings.Contains(detail.Message, "Insufficient stock") {
			t.Errorf("unexpected detail: %+v", detail)
		}
	})

	t.Run("non-positive quantity on add is 400", func(t *testing.T) {
		s, u, p := setup(t, 5)
		testee := handlers.AddCartItemHandler(s)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/cart/items",
			strings.NewReader(`{"product_id": "`+p.Id+`", "quantity": 0}`),
			httptestutil.ContentType("application/json"),
		)
		handlers.SetCurrentUser(c, u)

		httpError(t, testee(c), http.StatusBadRequest)
	})

	t.Run("GetCartHandler recomputes totals from the live catalog", func(t *testing.T) {
		s, u, p := setup(t, 5)
		try.To(s.AddToCart(u.Id, p.Id, 2)).OrFatal(t)

		// price changes after the line entered the cart
		try.To(s.UpdateProduct(p.Id, store.ProductSpec{
			Name: "Wireless Mouse", Price: decimal.NewFromInt(100), Stock: 5,
		})).OrFatal(t)

		testee := handlers.GetCartHandler(s)
		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/cart")
		handlers.SetCurrentUser(c, u)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		cart := apicarts.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &cart); err != nil {
			t.Fatal(err)
		}
		if !cart.TotalAmount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("totals are stale: %+v", cart)
		}
		if cart.TotalItems != 2 || len(cart.Items) != 1 {
			t.Errorf("unexpected cart: %+v", cart)
		}
	})

	t.Run("updating the quantity to zero removes the line", func(t *testing.T) {
		s, u, p := setup(t, 5)
		entry := try.To(s.AddToCart(u.Id, p.Id, 2)).OrFatal(t)

		testee := handlers.UpdateCartItemHandler(s, "itemId")
		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/cart/items/"+entry.Line.Id,
			strings.NewReader(`{"quantity": 0}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("itemId")
		c.SetParamValues(entry.Line.Id)
		handlers.SetCurrentUser(c, u)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if cart := s.Cart(u.Id); len(cart) != 0 {
			t.Errorf("line survived: %+v", cart)
		}
	})

	t.Run("removing a line which is already gone is 404", func(t *testing.T) {
		s, u, _ := setup(t, 5)

		testee := handlers.RemoveCartItemHandler(s, "itemId")
		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/cart/items/no-such")
		c.SetParamNames("itemId")
		c.SetParamValues("no-such")
		handlers.SetCurrentUser(c, u)

		httpError(t, testee(c), http.StatusNotFound)
	})

	t.Run("ClearCartHandler empties the cart", func(t *testing.T) {
		s, u, p := setup(t, 5)
		try.To(s.AddToCart(u.Id, p.Id, 2)).OrFatal(t)

		testee := handlers.ClearCartHandler(s)
		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/cart/clear")
		handlers.SetCurrentUser(c, u)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if cart := s.Cart(u.Id); len(cart) != 0 {
			t.Errorf("cart is not cleared: %+v", cart)
		}
	})
}

func TestOrderHandlers(t *testing.T) {

	t.Run("checkout of an empty cart is 400", func(t *testing.T) {
		s := store.New()
		u := try.To(s.NewUser("alice", "pw")).OrFatal(t)

		testee := handlers.CreateOrderHandler(s)
		e := echo.New()
		c, _ := httptestutil.Post(e, "/api/orders", nil)
		handlers.SetCurrentUser(c, u)

		err := testee(c)
		httperr := httpError(t, err, http.StatusBadRequest)
		if detail := errorDetail(t, httperr); detail.Message != "Cart is empty" {
			t.Errorf("unexpected detail: %+v", detail)
		}
	})

	t.Run("checkout snapshots the cart into a pending order", func(t *testing.T) {
		s := store.New()
		u := try.To(s.NewUser("alice", "pw")).OrFatal(t)
		p := s.AddProduct(store.ProductSpec{
			Name: "Wireless Mouse", Price: decimal.NewFromInt(99), Stock: 5,
		})
		try.To(s.AddToCart(u.Id, p.Id, 2)).OrFatal(t)

		testee := handlers.CreateOrderHandler(s)
		e := echo.New()
		c, respRec := httptestutil.Post(e, "/api/orders", nil)
		handlers.SetCurrentUser(c, u)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		order := apiorders.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &order); err != nil {
			t.Fatal(err)
		}
		if order.Status != apiorders.Pending {
			t.Errorf("new order should be pending: %s", order.Status)
		}
		if !order.TotalAmount.Equal(decimal.NewFromInt(198)) {
			t.Errorf("unmatch total: %s", order.TotalAmount)
		}

		listed := s.OrdersOf(u.Id)
		if len(listed) != 1 || listed[0].OrderNumber != order.OrderNumber {
			t.Errorf("order is not stored: %+v", listed)
		}
	})

	t.Run("an order of another user is not found", func(t *testing.T) {
		s := store.New()
		alice := try.To(s.NewUser("alice", "pw")).OrFatal(t)
		bob := try.To(s.NewUser("bob", "pw")).OrFatal(t)
		p := s.AddProduct(store.ProductSpec{
			Name: "Wireless Mouse", Price: decimal.NewFromInt(99), Stock: 5,
		})
		try.To(s.AddToCart(alice.Id, p.Id, 1)).OrFatal(t)
		order := try.To(s.PlaceOrder(alice.Id)).OrFatal(t)

		testee := handlers.GetOrderHandler(s, "orderId")
		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/orders/"+order.Id)
		c.SetParamNames("orderId")
		c.SetParamValues(order.Id)
		handlers.SetCurrentUser(c, bob)

		httpError(t, testee(c), http.StatusNotFound)
	})
}

func TestAdminHandlers(t *testing.T) {

	t.Run("GetStatsHandler renders the snapshot", func(t *testing.T) {
		s := store.New()
		u := try.To(s.NewUser("alice", "pw")).OrFatal(t)
		p := s.AddProduct(store.ProductSpec{
			Name: "Wireless Mouse", Price: decimal.NewFromInt(100), Stock: 5,
		})
		try.To(s.AddToCart(u.Id, p.Id, 2)).OrFatal(t)
		try.To(s.PlaceOrder(u.Id)).OrFatal(t)

		now := func() time.Time { return time.Now().UTC() }
		testee := handlers.GetStatsHandler(s, now)
		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/admin/stats")

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		stats := apiadmin.Stats{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &stats); err != nil {
			t.Fatal(err)
		}
		if stats.TotalUsers != 1 || stats.TotalOrders != 1 {
			t.Errorf("unexpected stats: %+v", stats)
		}
		if !stats.TotalRevenue.Equal(decimal.NewFromInt(200)) {
			t.Errorf("unmatch revenue: %s", stats.TotalRevenue)
		}
		if stats.OrderStatusStats[apiorders.Pending] != 1 {
			t.Errorf("unexpected status stats: %+v", stats.OrderStatusStats)
		}
	})

	t.Run("SetUserAdminHandler grants and revokes", func(t *testing.T) {
		s := store.New()
		me := try.To(s.NewUser("root", "pw")).OrFatal(t)
		me = try.To(s.SetAdmin(me.Id, true)).OrFatal(t)
		other := try.To(s.NewUser("alice", "pw")).OrFatal(t)

		testee := handlers.SetUserAdminHandler(s, "userId")
		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/admin/users/"+other.Id+"/admin",
			strings.NewReader(`{"is_admin": true}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("userId")
		c.SetParamValues(other.Id)
		handlers.SetCurrentUser(c, me)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		granted := apiusers.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &granted); err != nil {
			t.Fatal(err)
		}
		if !granted.IsAdmin {
			t.Errorf("admin flag is not granted: %+v", granted)
		}
	})

	t.Run("changing the caller's own flag is 403", func(t *testing.T) {
		s := store.New()
		me := try.To(s.NewUser("root", "pw")).OrFatal(t)
		me = try.To(s.SetAdmin(me.Id, true)).OrFatal(t)

		testee := handlers.SetUserAdminHandler(s, "userId")
		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/admin/users/"+me.Id+"/admin",
			strings.NewReader(`{"is_admin": false}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("userId")
		c.SetParamValues(me.Id)
		handlers.SetCurrentUser(c, me)

		err := testee(c)
		httperr := httpError(t, err, http.StatusForbidden)
		if detail := errorDetail(t, httperr); detail.Message != "Cannot change your own administrator flag" {
			t.Errorf("unexpected detail: %+v", detail)
		}

		if got := try.To(s.User(me.Id)).OrFatal(t); !got.IsAdmin {
			t.Error("the flag should be untouched")
		}
	})

	t.Run("an unknown user is 404", func(t *testing.T) {
		s := store.New()
		me := try.To(s.NewUser("root", "pw")).OrFatal(t)

		testee := handlers.SetUserAdminHandler(s, "userId")
		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/admin/users/no-such/admin",
			strings.NewReader(`{"is_admin": true}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("userId")
		c.SetParamValues("no-such")
		handlers.SetCurrentUser(c, me)

		httpError(t, testee(c), http.StatusNotFound)
	})
}
