package update

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
	Name        string `flag:"name" help:"new name of the Product"`
	Description string `flag:"description" help:"new description of the Product"`
	Price       string `flag:"price" metavar:"NUMBER" help:"new unit price, e.g. 29.99"`
	Stock       int    `flag:"stock" help:"new stock"`
	ImageUrl    string `flag:"image-url" help:"new URL of the product image"`
}

const ARG_PRODUCT_ID = "PRODUCT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Overwrite a Product. (admin only)",
		Flags{},
		flarc.Args{
			{
				Name: ARG_PRODUCT_ID, Required: true,
				Help: "Id of the Product to be updated",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Overwrite a Product in the catalog. Administrators only.

The whole Product is replaced with the given flags; --name and --price
are required.
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
		productId := cl.Args()[ARG_PRODUCT_ID][0]

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

		product, err := client.UpdateProduct(ctx, productId, apiproducts.Spec{
			Name:        flags.Name,
			Description: flags.Description,
			Price:       price,
			Stock:       flags.Stock,
			ImageUrl:    flags.ImageUrl,
		})
		if err != nil {
			return fmt.Errorf("%w: Product Id:%s", err, productId)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(product); err != nil {
			logger.Panicf("fail to dump the updated Product")
		}
		return nil
	}
}
