package add

import (
	"context"
	"fmt"
	"log"

	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/internal/display"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Quantity int `flag:"quantity" alias:"q" help:"number of pieces to add"`
}

const ARG_PRODUCT_ID = "PRODUCT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Add a Product to your Cart.",
		Flags{
			Quantity: 1,
		},
		flarc.Args{
			{
				Name: ARG_PRODUCT_ID, Required: true,
				Help: "Id of the Product to be added",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Add a Product to your Cart and show the Cart after that.

Adding a Product which is already in the Cart accumulates quantities in
its line. The backend checks the stock on each add.
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

		quantity := cl.Flags().Quantity
		if quantity < 1 {
			return fmt.Errorf("%w: --quantity should be 1 or more", flarc.ErrUsage)
		}

		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		if _, err := sess.RequireUser(); err != nil {
			return err
		}

		if _, err := client.AddCartItem(ctx, productId, quantity); err != nil {
			return fmt.Errorf("%w: Product Id:%s", err, productId)
		}

		// mutations do not report the whole cart; fetch it back.
		cart, err := client.GetCart(ctx)
		if err != nil {
			return err
		}
		display.WriteCart(cl.Stdout(), cart)
		return nil
	}
}
