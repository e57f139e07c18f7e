package list

import (
	"context"
	"log"
	"strings"

	apiorders "github.com/echo-commerce/echo-commerce/api/types/orders"
	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/internal/display"
	"github.com/echo-commerce/echo-commerce/pkg/utils"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Filter string `flag:"filter" help:"case-insensitive substring to filter order numbers with"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Orders of every User, newest first. (admin only)",
		Flags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List Orders of every User, newest first.

--filter is a case-insensitive substring match over order numbers,
applied locally.
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
		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		if _, err := sess.RequireAdmin(); err != nil {
			return err
		}

		found, err := client.FindAllOrders(ctx)
		if err != nil {
			return err
		}

		if filter := strings.ToLower(cl.Flags().Filter); filter != "" {
			found = utils.Filter(found, func(o apiorders.Summary) bool {
				return strings.Contains(strings.ToLower(o.OrderNumber), filter)
			})
		}

		display.WriteOrderSummaries(cl.Stdout(), found)
		return nil
	}
}
