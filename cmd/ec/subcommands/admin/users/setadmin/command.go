package setadmin

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Grant  bool `flag:"grant" help:"grant the administrator flag"`
	Revoke bool `flag:"revoke" help:"revoke the administrator flag"`
}

const ARG_USER_ID = "USER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Grant or revoke the administrator flag of a User. (admin only)",
		Flags{},
		flarc.Args{
			{
				Name: ARG_USER_ID, Required: true,
				Help: "Id of the User whose flag is changed",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Grant or revoke the administrator flag of a User.

Exactly one of --grant and --revoke is required. Changing your own flag
is rejected, both here and by the backend.
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
		userId := cl.Args()[ARG_USER_ID][0]

		flags := cl.Flags()
		if flags.Grant == flags.Revoke {
			return fmt.Errorf("%w: pass exactly one of --grant and --revoke", flarc.ErrUsage)
		}

		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		me, err := sess.RequireAdmin()
		if err != nil {
			return err
		}
		if me.Id == userId {
			return fmt.Errorf(
				"%w: cannot change your own administrator flag", session.ErrPermissionDenied,
			)
		}

		user, err := client.SetUserAdmin(ctx, userId, flags.Grant)
		if err != nil {
			return fmt.Errorf("%w: User Id:%s", err, userId)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(user); err != nil {
			logger.Panicf("fail to dump the updated User")
		}
		return nil
	}
}
