package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apiadmin "github.com/echo-commerce/echo-commerce/api/types/admin"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/binding"
	"github.com/echo-commerce/echo-commerce/cmd/ecd/store"
	binderr "github.com/echo-commerce/echo-commerce/pkg/api-types-binding/errors"
	"github.com/echo-commerce/echo-commerce/pkg/utils"
)

// GetStatsHandler renders system-wide statistics. Admin only.
func GetStatsHandler(s *store.Store, now func() time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats := s.Stats(now())
		return c.JSON(http.StatusOK, apiadmin.Stats{
			TotalUsers:         stats.TotalUsers,
			TotalProducts:      stats.TotalProducts,
			TotalOrders:        stats.TotalOrders,
			TotalRevenue:       stats.TotalRevenue,
			TodayOrders:        stats.TodayOrders,
			MonthOrders:        stats.MonthOrders,
			InStockProducts:    stats.InStockProducts,
			OutOfStockProducts: stats.OutOfStockProducts,
			OrderStatusStats:   stats.OrderStatusStats,
		})
	}
}

// FindUserHandler lists accounts, newest first. Admin only.
func FindUserHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		skip, err := queryInt(c, "skip", 0)
		if err != nil {
			return err
		}
		limit, err := queryInt(c, "limit", 20)
		if err != nil {
			return err
		}
		if limit == 0 || maxPageSize < limit {
			limit = maxPageSize
		}

		found := s.Users(skip, limit)
		return c.JSON(http.StatusOK, utils.Map(found, binding.ComposeUser))
	}
}

// SetUserAdminHandler grants or revokes the admin flag of an account.
// Admin only. Changing the caller's own flag is rejected, so an admin
// can never lock themselves out by accident.
func SetUserAdminHandler(s *store.Store, paramId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		me, ok := CurrentUser(c)
		if !ok {
			return binderr.Unauthorized("Not authenticated")
		}

		change := new(apiadmin.AdminFlagChange)
		if err := json.NewDecoder(c.Request().Body).Decode(change); err != nil {
			return binderr.BadRequest("can not understand the requested json")
		}

		userId := c.Param(paramId)
		if userId == me.Id {
			return binderr.Forbidden("Cannot change your own administrator flag")
		}

		user, err := s.SetAdmin(userId, change.IsAdmin)
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("User not found")
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, binding.ComposeUser(user))
	}
}

// FindAllOrderHandler lists every user's orders, newest first. Admin
// only.
func FindAllOrderHandler(s *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		found := s.Orders()
		return c.JSON(http.StatusOK, utils.Map(found, binding.ComposeOrderSummary))
	}
}

// GetAnyOrderHandler gets any user's order by id. Admin only.
func GetAnyOrderHandler(s *store.Store, paramId string) echo.HandlerFunc {
	return func(c echo.Context) error {
		order, err := s.AnyOrder(c.Param(paramId))
		if errors.Is(err, store.ErrNotFound) {
			return binderr.NotFound("Order not found")
		}
		if err != nil {
			return binderr.InternalServerError(err)
		}
		return c.JSON(http.StatusOK, binding.ComposeOrder(order))
	}
}
