package add_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	apicarts "github.com/echo-commerce/echo-commerce/api/types/carts"
	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	kprof "github.com/echo-commerce/echo-commerce/cmd/ec/config/profiles"
	"github.com/echo-commerce/echo-commerce/cmd/ec/rest/mock"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	cart_add "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/cart/add"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/internal/commandline"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/logger"
	"github.com/shopspring/decimal"
	"github.com/youta-t/flarc"
)

func newSession(t *testing.T, prof *kprof.Profile) *session.Session {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "profile")
	return session.New(prof, kprof.ProfileStore{"default": prof}, storePath)
}

func TestAddCommand(t *testing.T) {
	t.Run("it adds the product and shows the cart fetched back", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.CurrentUser = func(ctx context.Context) (apiusers.Detail, error) {
			return apiusers.Detail{Id: "user-1", Username: "alice"}, nil
		}
		client.Impl.AddCartItem = func(ctx context.Context, productId string, quantity int) (apicarts.Item, error) {
			return apicarts.Item{Id: "line-1", ProductId: productId, Quantity: quantity}, nil
		}
		client.Impl.GetCart = func(ctx context.Context) (apicarts.Detail, error) {
			return apicarts.Detail{
				Items: []apicarts.Item{
					{
						Id: "line-1", ProductId: "prod-1", Quantity: 2,
						ProductName:  "Wireless Mouse",
						ProductPrice: decimal.NewFromFloat(29.99),
						Subtotal:     decimal.NewFromFloat(59.98),
					},
				},
				TotalAmount: decimal.NewFromFloat(59.98),
				TotalItems:  2,
			}, nil
		}

		prof := &kprof.Profile{ApiRoot: "http://api.shop.invalid/api", Token: "valid-token"}
		sess := newSession(t, prof)

		stdout := new(strings.Builder)
		testee := cart_add.Task()

		err := testee(
			context.Background(),
			logger.Null(),
			client,
			sess,
			commandline.MockCommandline[cart_add.Flags]{
				Fullname_: "ec cart add",
				Stdout_:   stdout,
				Stderr_:   new(strings.Builder),
				Flags_:    cart_add.Flags{Quantity: 2},
				Args_: map[string][]string{
					cart_add.ARG_PRODUCT_ID: {"prod-1"},
				},
			},
			[]any{},
		)
		if err != nil {
			t.Fatal(err)
		}

		if len(client.Calls.AddCartItem) != 1 {
			t.Fatalf("AddCartItem should be called once (actual = %d)", len(client.Calls.AddCartItem))
		}
		if actual := client.Calls.AddCartItem[0]; actual.ProductId != "prod-1" || actual.Quantity != 2 {
			t.Errorf("AddCartItem args are wrong: %+v", actual)
		}
		if client.Calls.GetCart != 1 {
			t.Errorf("the cart should be fetched back after the mutation (actual = %d)", client.Calls.GetCart)
		}
		if out := stdout.String(); !strings.Contains(out, "Wireless Mouse") {
			t.Errorf("the cart is not shown: %s", out)
		}
	})

	t.Run("when --quantity is less than 1, it fails with usage error", func(t *testing.T) {
		client := mock.New(t)
		prof := &kprof.Profile{ApiRoot: "http://api.shop.invalid/api", Token: "valid-token"}
		sess := newSession(t, prof)

		testee := cart_add.Task()
		err := testee(
			context.Background(),
			logger.Null(),
			client,
			sess,
			commandline.MockCommandline[cart_add.Flags]{
				Fullname_: "ec cart add",
				Stdout_:   new(strings.Builder),
				Stderr_:   new(strings.Builder),
				Flags_:    cart_add.Flags{Quantity: 0},
				Args_: map[string][]string{
					cart_add.ARG_PRODUCT_ID: {"prod-1"},
				},
			},
			[]any{},
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("error is not ErrUsage: %v", err)
		}
		if len(client.Calls.AddCartItem) != 0 {
			t.Errorf("AddCartItem should not be called")
		}
	})

	t.Run("when not logged in, it fails without touching the cart", func(t *testing.T) {
		client := mock.New(t)
		prof := &kprof.Profile{ApiRoot: "http://api.shop.invalid/api"} // no token
		sess := newSession(t, prof)

		testee := cart_add.Task()
		err := testee(
			context.Background(),
			logger.Null(),
			client,
			sess,
			commandline.MockCommandline[cart_add.Flags]{
				Fullname_: "ec cart add",
				Stdout_:   new(strings.Builder),
				Stderr_:   new(strings.Builder),
				Flags_:    cart_add.Flags{Quantity: 1},
				Args_: map[string][]string{
					cart_add.ARG_PRODUCT_ID: {"prod-1"},
				},
			},
			[]any{},
		)
		if !errors.Is(err, session.ErrNotLoggedIn) {
			t.Errorf("error is not ErrNotLoggedIn: %v", err)
		}
		if len(client.Calls.AddCartItem) != 0 {
			t.Errorf("AddCartItem should not be called")
		}
	})
}
