package register

import (
	"context"
	"fmt"
	"log"

	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/internal/credential"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Password string `flag:"password" help:"password. Omit to be prompted without echoing"`
}

const ARG_USERNAME = "USERNAME"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a new account and log in with it.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_USERNAME, Required: true,
				Help: "name of the new account (3 to 20 characters)",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Create a new account and log in with it.

The issued token is stored into your profile, as "ec login" does.
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
		username := cl.Args()[ARG_USERNAME][0]

		password := cl.Flags().Password
		if password == "" {
			p, err := credential.PromptPassword(cl.Stdin(), cl.Stderr(), "password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = p
		}

		user, err := sess.Register(ctx, client, username, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cl.Stdout(), "registered and logged in as %s\n", user.Username)
		return nil
	}
}
