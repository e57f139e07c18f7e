package new

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

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Check out your Cart into a new Order.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Check out your Cart into a new Order, as one opaque step.

The backend takes a snapshot of the Cart lines, decrements the stock and
empties the Cart. There is no partial success: on any failure, nothing
happens and an error is reported.
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

		order, err := client.CreateOrder(ctx)
		if err != nil {
			return fmt.Errorf("checkout failed: %w", err)
		}

		display.WriteOrderDetail(cl.Stdout(), order)
		return nil
	}
}
