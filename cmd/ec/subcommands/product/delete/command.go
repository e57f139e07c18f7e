package delete

import (
	"context"
	"fmt"
	"log"

	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_PRODUCT_ID = "PRODUCT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a Product. (admin only)",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PRODUCT_ID, Required: true,
				Help: "Id of the Product to be deleted",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Delete a Product from the catalog. Administrators only.

Order snapshots referring the Product are kept intact.
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
		productId := cl.Args()[ARG_PRODUCT_ID][0]

		if err := sess.Resolve(ctx, client); err != nil {
			return err
		}
		if _, err := sess.RequireAdmin(); err != nil {
			return err
		}

		if err := client.DeleteProduct(ctx, productId); err != nil {
			return fmt.Errorf("%w: Product Id:%s", err, productId)
		}

		fmt.Fprintf(cl.Stdout(), "deleted: %s\n", productId)
		return nil
	}
}
