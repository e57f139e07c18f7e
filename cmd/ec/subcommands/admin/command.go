package admin

import (
	admin_orders "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin/orders"
	admin_stats "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin/stats"
	admin_users "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin/users"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	stats, err := admin_stats.New()
	if err != nil {
		return nil, err
	}
	users, err := admin_users.New()
	if err != nil {
		return nil, err
	}
	orders, err := admin_orders.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Administrator dashboard. (admin only)",
		struct{}{},
		flarc.WithSubcommand("stats", stats),
		flarc.WithSubcommand("users", users),
		flarc.WithSubcommand("orders", orders),
	)
}
