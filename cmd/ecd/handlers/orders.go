package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/echo-commerce/echo-commerce/cmd/ecd/binding"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	binderr "github.com/echo-commerce/echo-commerce/pkg/api-types-binding/errors"
	"github.com/echo-commerce/echo-commerce/pkg/utils"
)

// CreateOrderHandler converts the authenticated user's cart into an
// order, as one opaque step. The request carries no body; the cart is
// the input.
func CreateOrderHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}

		order, err := s.PlaceOrder(user.Id)
		if errors.Is(err, store.ErrEmptyCart) {
			return binderr.BadRequest("Cart is empty")
		}
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Product not found: " + err.Error())
		}
		if errors.Is(err, store.ErrShortStock) {
			return binderr.BadRequest("Insufficient stock: " + err.Error())
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, binding.ComposeOrder(order))
	}
}

// FindOrderHandler lists the authenticated user's orders, newest first.
func FindOrderHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}
		found := s.OrdersOf(user.Id)
		return c.JSON(http.StatusOK, utils.Map(found, binding.ComposeOrderSummary))
	}
}

// GetOrderHandler gets one of the authenticated user's orders. Other
// users' orders are indistinguishable from missing ones.
func GetOrderHandler(s *store.Store, paramId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}

		order, err := s.OrderOf(user.Id, c.Param(paramId))
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Order not found")
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, binding.ComposeOrder(order))
	}
}
