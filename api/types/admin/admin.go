package admin

import (
	"github.com/echo-commerce/echo-commerce/api/types/orders"
	"github.com/echo-commerce/echo-commerce/pkg/cmp"
	"github.com/shopspring/decimal"
)

// Stats is the system-wide snapshot served to the admin dashboard.
type Stats struct {
	TotalUsers         int                   `json:"total_users"`
	TotalProducts      int                   `json:"total_products"`
	TotalOrders        int                   `json:"total_orders"`
	TotalRevenue       decimal.Decimal       `json:"total_revenue"`
	TodayOrders        int                   `json:"today_orders"`
	MonthOrders        int                   `json:"month_orders"`
	InStockProducts    int                   `json:"in_stock_products"`
	OutOfStockProducts int                   `json:"out_of_stock_products"`
	OrderStatusStats   map[orders.Status]int `json:"order_status_stats"`
}

func (s Stats) Equal(o Stats) bool {
	return s.TotalUsers == o.TotalUsers &&
		s.TotalProducts == o.TotalProducts &&
		s.TotalOrders == o.TotalOrders &&
		s.TotalRevenue.Equal(o.TotalRevenue) &&
		s.TodayOrders == o.TodayOrders &&
		s.MonthOrders == o.MonthOrders &&
		s.InStockProducts == o.InStockProducts &&
		s.OutOfStockProducts == o.OutOfStockProducts &&
		cmp.MapEq(s.OrderStatusStats, o.OrderStatusStats)
}

// AdminFlagChange is the request body of the toggle-admin operation.
type AdminFlagChange struct {
	IsAdmin bool `json:"is_admin"`
}
