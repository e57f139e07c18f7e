package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	subadmin "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin"
	subcart "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/cart"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/common"
	subinit "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/initialize"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/logger"
	sublogin "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/login"
	sublogout "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/logout"
	suborder "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/order"
	subproduct "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/product"
	subregister "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/register"
	subwhoami "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/whoami"
	"github.com/echo-commerce/echo-commerce/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags()).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	login := try.To(sublogin.New()).OrFatal(logger)
	register := try.To(subregister.New()).OrFatal(logger)
	logout := try.To(sublogout.New()).OrFatal(logger)
	whoami := try.To(subwhoami.New()).OrFatal(logger)
	product := try.To(subproduct.New()).OrFatal(logger)
	cart := try.To(subcart.New()).OrFatal(logger)
	order := try.To(suborder.New()).OrFatal(logger)
	admin := try.To(subadmin.New()).OrFatal(logger)

	ec := try.To(
		flarc.NewCommandGroup(
			"Echo-Commerce Commandline interface",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("login", login),
			flarc.WithSubcommand("register", register),
			flarc.WithSubcommand("logout", logout),
			flarc.WithSubcommand("whoami", whoami),
			flarc.WithSubcommand("product", product),
			flarc.WithSubcommand("cart", cart),
			flarc.WithSubcommand("order", order),
			flarc.WithSubcommand("admin", admin),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, ec, flarc.WithHelp(true)))
}
