package update

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
	Quantity int `flag:"quantity" alias:"q" help:"new quantity of the line. 0 or less removes the line"`
}

const ARG_ITEM_ID = "ITEM_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Set the quantity of a Cart line.",
		Flags{
			Quantity: 1,
		},
		flarc.Args{
			{
				Name: ARG_ITEM_ID, Required: true,
				Help: "Id of the Cart line to be updated",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Set the quantity of a Cart line and show the Cart after that.

--quantity 0 (or less) removes the line, as "ec cart remove" does.
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
		itemId := cl.Args()[ARG_ITEM_ID][0]

		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		if _, err := sess.RequireUser(); err != nil {
			return err
		}

		if err := client.UpdateCartItem(ctx, itemId, cl.Flags().Quantity); err != nil {
			return fmt.Errorf("%w: Cart line Id:%s", err, itemId)
		}

		cart, err := client.GetCart(ctx)
		if err != nil {
			return err
		}
		display.WriteCart(cl.Stdout(), cart)
		return nil
	}
}
