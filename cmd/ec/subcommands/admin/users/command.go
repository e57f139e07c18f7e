package users

import (
	users_list "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin/users/list"
	users_setadmin "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin/users/setadmin"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	list, err := users_list.New()
	if err != nil {
		return nil, err
	}
	setAdmin, err := users_setadmin.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Browse and manage registered Users. (admin only)",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("set-admin", setAdmin),
	)
}
