package stats

import (
	"context"
	"encoding/json"
	"log"

	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show system-wide statistics. (admin only)",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show system-wide statistics: user/product/order counts, revenue, orders
of today and of this month, stock buckets and per-status order counts.
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
		if _, err := sess.RequireAdmin(); err != nil {
			return err
		}

		stats, err := client.GetStats(ctx)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(stats); err != nil {
			logger.Panicf("fail to dump statistics")
		}
		return nil
	}
}
