package orders

import (
	orders_list "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin/orders/list"
	orders_show "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin/orders/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	list, err := orders_list.New()
	if err != nil {
		return nil, err
	}
	show, err := orders_show.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Browse Orders of every User. (admin only)",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
	)
}
