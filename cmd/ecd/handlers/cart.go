package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apicarts "github.com/echo-commerce/echo-commerce/api/types/carts"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/binding"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	binderr "github.com/echo-commerce/echo-commerce/pkg/api-types-binding/errors"
)

// GetCartHandler renders the whole cart of the authenticated user, with
// names, prices and totals recomputed from the live catalog.
func GetCartHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}
		return c.JSON(http.StatusOK, binding.ComposeCart(s.Cart(user.Id)))
	}
}

// AddCartItemHandler puts a product into the cart. Quantities of an
// existing line accumulate.
func AddCartItemHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}

		spec := new(apicarts.ItemSpec)
		if err := json.NewDecoder(c.Request().Body).Decode(spec); err != nil {
			return binderr.BadRequest("can not understand the requested json")
		}
		if spec.Quantity <= 0 {
			return binderr.BadRequest("quantity should be positive")
		}

		entry, err := s.AddToCart(user.Id, spec.ProductId, spec.Quantity)
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Product not found")
		}
		if errors.Is(err, store.ErrShortStock) {
			return binderr.BadRequest("Insufficient stock: " + err.Error())
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, binding.ComposeCartItem(entry))
	}
}

// UpdateCartItemHandler sets the quantity of a cart line.
//
// Quantity <= 0 means removal, mirroring the client's contract.
func UpdateCartItemHandler(s *store.Store, paramId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}

		change := new(apicarts.QuantityChange)
		if err := json.NewDecoder(c.Request().Body).Decode(change); err != nil {
			return binderr.BadRequest("can not understand the requested json")
		}

		itemId := c.Param(paramId)
		if change.Quantity <= 0 {
			err := s.RemoveCartLine(user.Id, itemId)
			if errors.Is(err, store.ErrNotFound) {
				return binderr.NotFound("Cart item not found")
			}
			if err != nil {
				return binderr.InternalServerError(err)
			}
			return c.JSON(http.StatusOK, map[string]string{"message": "Item removed from cart"})
		}

		entry, err := s.UpdateCartLine(user.Id, itemId, change.Quantity)
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Cart item not found")
		}
		if errors.Is(err, store.ErrShortStock) {
			return binderr.BadRequest("Insufficient stock: " + err.Error())
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, binding.ComposeCartItem(entry))
	}
}

// RemoveCartItemHandler deletes a cart line. Deleting a line which is
// already gone is 404; the client treats that as success.
func RemoveCartItemHandler(s *store.Store, paramId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}

		err := s.RemoveCartLine(user.Id, c.Param(paramId))
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Cart item not found")
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Item removed from cart"})
	}
}

// ClearCartHandler empties the cart.
func ClearCartHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}
		s.ClearCart(user.Id)
		return c.JSON(http.StatusOK, map[string]string{"message": "Cart cleared"})
	}
}
