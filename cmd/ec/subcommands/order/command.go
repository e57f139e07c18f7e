package order

import (
	order_list "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/order/list"
	order_new "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/order/new"
	order_show "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/order/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	neworder, err := order_new.New()
	if err != nil {
		return nil, err
	}
	list, err := order_list.New()
	if err != nil {
		return nil, err
	}
	show, err := order_show.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Check out and browse your Orders.",
		struct{}{},
		flarc.WithSubcommand("new", neworder),
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
	)
}
