package find

import (
	"context"
	"encoding/json"
	"log"

	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Skip  int `flag:"skip" help:"number of products to skip from the head of the catalog"`
	Limit int `flag:"limit" help:"maximum number of products to list"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find Products in the catalog.",
		Flags{
			Skip:  0,
			Limit: 0,
		},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Find Products in the catalog and show them as JSON.

Paging is controlled with --skip and --limit; without them, the backend's
defaults apply. No login is needed.
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

		found, err := client.FindProducts(ctx, flags.Skip, flags.Limit)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(found); err != nil {
			logger.Panicf("fail to dump found Products")
		}
		return nil
	}
}
