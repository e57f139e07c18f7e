package product

import (
	product_create "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/product/create"
	product_delete "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/product/delete"
	product_find "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/product/find"
	product_show "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/product/show"
	product_update "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/product/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := product_find.New()
	if err != nil {
		return nil, err
	}
	show, err := product_show.New()
	if err != nil {
		return nil, err
	}
	create, err := product_create.New()
	if err != nil {
		return nil, err
	}
	update, err := product_update.New()
	if err != nil {
		return nil, err
	}
	del, err := product_delete.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Browse and manage catalog Products.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("delete", del),
	)
}
