package list

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/echo-commerce/echo-commerce/pkg/utils"
	"github.com/youta-t/flarc"
)

// the dashboard fetches at most this many records and filters locally.
const fetchLimit = 1000

type Flags struct {
	Filter string `flag:"filter" help:"case-insensitive substring to filter usernames with"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List registered Users. (admin only)",
		Flags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List registered Users.

Up to 1000 records are fetched and filtered locally with --filter, a
case-insensitive substring match over usernames.
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

		found, err := client.FindUsers(ctx, 0, fetchLimit)
		if err != nil {
			return err
		}

		if filter := strings.ToLower(cl.Flags().Filter); filter != "" {
			found = utils.Filter(found, func(u apiusers.Detail) bool {
				return strings.Contains(strings.ToLower(u.Username), filter)
			})
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(found); err != nil {
			logger.Panicf("fail to dump found Users")
		}
		return nil
	}
}
