package show

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

const ARG_ORDER_ID = "ORDER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show any User's Order for the specified Order Id. (admin only)",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "Id of the Order to be shown",
			},
		},
		common.NewTask(Task()),
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
		orderId := cl.Args()[ARG_ORDER_ID][0]

		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		if _, err := sess.RequireAdmin(); err != nil {
			return err
		}

		order, err := client.GetAnyOrder(ctx, orderId)
		if err != nil {
			return fmt.Errorf("%w: Order Id:%s", err, orderId)
		}

		display.WriteOrderDetail(cl.Stdout(), order)
		return nil
	}
}
