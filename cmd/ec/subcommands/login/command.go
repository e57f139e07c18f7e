package login

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
		"Log in to the storefront and store the issued token.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_USERNAME, Required: true,
				Help: "account name to log in as",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Log in to the storefront and store the issued token into your profile.

Subsequent commands use the stored token until "{{ .Command }}" is run
again or "ec logout" drops it.
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

		user, err := sess.Login(ctx, client, username, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cl.Stdout(), "logged in as %s\n", user.Username)
		return nil
	}
}
