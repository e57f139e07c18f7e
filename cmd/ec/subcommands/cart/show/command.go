package show

import (
	"context"
	"log"

	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/internal/display"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show your Cart.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show your Cart with per-line subtotals and the grand total.

All the amounts are computed by the backend; this command only renders
them.
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
		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		if _, err := sess.RequireUser(); err != nil {
			return err
		}

		cart, err := client.GetCart(ctx)
		if err != nil {
			return err
		}

		display.WriteCart(cl.Stdout(), cart)
		return nil
	}
}
