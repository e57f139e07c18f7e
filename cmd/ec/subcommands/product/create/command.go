package create

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	apiproducts "github.com/echo-commerce/echo-commerce/api/types/products"
	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/shopspring/decimal"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Name        string `flag:"name" help:"name of the new Product"`
	Description string `flag:"description" help:"description of the new Product"`
	Price       string `flag:"price" metavar:"NUMBER" help:"unit price, e.g. 29.99"`
	Stock       int    `flag:"stock" help:"initial stock"`
	ImageUrl    string `flag:"image-url" help:"URL of the product image"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a new Product. (admin only)",
		Flags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Create a new Product in the catalog. Administrators only.

--name and --price are required.
`),
	)
}

func Task() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		client krst.Client,
		sess *session.Session,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		flags := cl.Flags()
		if flags.Name == "" || flags.Price == "" {
			return fmt.Errorf("%w: --name and --price are required", flarc.ErrUsage)
		}
		price, err := decimal.NewFromString(flags.Price)
		if err != nil {
			return fmt.Errorf("%w: --price is not a number: %s", flarc.ErrUsage, flags.Price)
		}

		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		if _, err := sess.RequireAdmin(); err != nil {
			return err
		}

		product, err := client.RegisterProduct(ctx, apiproducts.Spec{
			Name:        flags.Name,
			Description: flags.Description,
			Price:       price,
			Stock:       flags.Stock,
			ImageUrl:    flags.ImageUrl,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(product); err != nil {
			logger.Panicf("fail to dump the created Product")
		}
		return nil
	}
}
