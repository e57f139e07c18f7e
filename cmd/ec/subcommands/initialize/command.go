package initialize

import (
	"context"
	"errors"
	"fmt"
	"log"

	prof "github.com/echo-commerce/echo-commerce/cmd/ec/config/profiles"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_API_ROOT = "API_ROOT"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a storefront backend into your profile store.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_API_ROOT, Required: true,
				Help: "URL of the storefront API, e.g. http://localhost:3000/api",
			},
		},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Register a storefront backend into your profile store.

The profile name is given by "--profile" (default: "default", or the
EC_PROFILE environment variable). Logging in later stores the issued
token into the same profile.

Example:

	{{ .Command }} http://localhost:3000/api
`),
	)
}

func Task() common.TaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		apiRoot := cl.Args()[ARG_API_ROOT][0]

		newProf := &prof.Profile{ApiRoot: apiRoot}
		if err := newProf.Verify(); err != nil {
			return fmt.Errorf("%w (%s): %w", flarc.ErrUsage, apiRoot, err)
		}

		store, err := prof.LoadProfileStore(commonFlag.ProfileStore)
		if errors.Is(err, prof.ErrProfileStoreNotFound) {
			store = prof.ProfileStore{}
		} else if err != nil {
			return fmt.Errorf(
				"failed to load profile store (%s): %w", commonFlag.ProfileStore, err,
			)
		}

		store[commonFlag.Profile] = newProf
		if err := store.Save(commonFlag.ProfileStore); err != nil {
			return fmt.Errorf(
				"failed to save profile store (%s): %w", commonFlag.ProfileStore, err,
			)
		}

		logger.Printf(
			"profile %s is saved to %s", commonFlag.Profile, commonFlag.ProfileStore,
		)
		return nil
	}
}
