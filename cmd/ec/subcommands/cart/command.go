package cart

import (
	cart_add "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/cart/add"
	cart_clear "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/cart/clear"
	cart_remove "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/cart/remove"
	cart_show "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/cart/show"
	cart_update "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/cart/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	show, err := cart_show.New()
	if err != nil {
		return nil, err
	}
	add, err := cart_add.New()
	if err != nil {
		return nil, err
	}
	update, err := cart_update.New()
	if err != nil {
		return nil, err
	}
	remove, err := cart_remove.New()
	if err != nil {
		return nil, err
	}
	clear, err := cart_clear.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate your shopping Cart.",
		struct{}{},
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("remove", remove),
		flarc.WithSubcommand("clear", clear),
	)
}
