package show

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

const ARG_PRODUCT_ID = "PRODUCT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the Product for the specified Product Id.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PRODUCT_ID, Required: true,
				Help: "Id of the Product to be shown",
			},
		},
		common.NewTask(Task()),
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

		product, err := client.GetProduct(ctx, productId)
		if err != nil {
			return fmt.Errorf("%w: Product Id:%s", err, productId)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(product); err != nil {
			logger.Panicf("fail to dump the found Product")
		}
		return nil
	}
}
