package remove

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

const ARG_ITEM_ID = "ITEM_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Remove a line from your Cart.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ITEM_ID, Required: true,
				Help: "Id of the Cart line to be removed",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Remove a line from your Cart and show the Cart after that.

Removing a line which is already gone is not an error.
`),
	)
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		client krst.Client,
		sess *session.Session,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		itemId := cl.Args()[ARG_ITEM_ID][0]

		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		if _, err := sess.RequireUser(); err != nil {
			return err
		}

		if err := client.RemoveCartItem(ctx, itemId); err != nil {
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
