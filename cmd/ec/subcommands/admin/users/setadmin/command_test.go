package setadmin_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	kprof "github.com/echo-commerce/echo-commerce/cmd/ec/config/profiles"
	"github.com/echo-commerce/echo-commerce/cmd/ec/rest/mock"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	users_setadmin "github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/admin/users/setadmin"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/internal/commandline"
	"github.com/echo-commerce/echo-commerce/cmd/ec/subcommands/logger"
	"github.com/youta-t/flarc"
)

func TestSetAdminCommand(t *testing.T) {
	type When struct {
		me      apiusers.Detail
		flags   users_setadmin.Flags
		userId  string
		noLogin bool
	}
	type Then struct {
		err       error
		calls     int
		grantSent bool
	}

	admin := apiusers.Detail{Id: "user-1", Username: "root", IsAdmin: true}
	plain := apiusers.Detail{Id: "user-1", Username: "alice", IsAdmin: false}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			if !when.noLogin {
				client.Impl.CurrentUser = func(ctx context.Context) (apiusers.Detail, error) {
					return when.me, nil
				}
			}
			client.Impl.SetUserAdmin = func(ctx context.Context, userId string, isAdmin bool) (apiusers.Detail, error) {
				return apiusers.Detail{Id: userId, IsAdmin: isAdmin}, nil
			}

			prof := &kprof.Profile{ApiRoot: "http://api.shop.invalid/api"}
			if !when.noLogin {
				prof.Token = "valid-token"
			}
			storePath := filepath.Join(t.TempDir(), "profile")
			sess := session.New(prof, kprof.ProfileStore{"default": prof}, storePath)

			testee := users_setadmin.Task()
			err := testee(
				context.Background(),
				logger.Null(),
				client,
				sess,
				commandline.MockCommandline[users_setadmin.Flags]{
					Fullname_: "ec admin users set-admin",
					Stdout_:   new(strings.Builder),
					Stderr_:   new(strings.Builder),
					Flags_:    when.flags,
					Args_: map[string][]string{
						users_setadmin.ARG_USER_ID: {when.userId},
					},
				},
				[]any{},
			)

			if !errors.Is(err, then.err) {
				t.Errorf("wrong error: (actual, expected) = (%v, %v)", err, then.err)
			}
			if len(client.Calls.SetUserAdmin) != then.calls {
				t.Fatalf(
					"SetUserAdmin calls are wrong (actual, expected): %d, %d",
					len(client.Calls.SetUserAdmin), then.calls,
				)
			}
			if then.calls == 1 {
				actual := client.Calls.SetUserAdmin[0]
				if actual.UserId != when.userId || actual.IsAdmin != then.grantSent {
					t.Errorf("SetUserAdmin args are wrong: %+v", actual)
				}
			}
		}
	}

	t.Run("granting another user works", theory(
		When{me: admin, flags: users_setadmin.Flags{Grant: true}, userId: "user-2"},
		Then{err: nil, calls: 1, grantSent: true},
	))
	t.Run("revoking another user works", theory(
		When{me: admin, flags: users_setadmin.Flags{Revoke: true}, userId: "user-2"},
		Then{err: nil, calls: 1, grantSent: false},
	))
	t.Run("changing your own flag is rejected before calling the backend", theory(
		When{me: admin, flags: users_setadmin.Flags{Revoke: true}, userId: "user-1"},
		Then{err: session.ErrPermissionDenied, calls: 0},
	))
	t.Run("a non-admin is rejected", theory(
		When{me: plain, flags: users_setadmin.Flags{Grant: true}, userId: "user-2"},
		Then{err: session.ErrPermissionDenied, calls: 0},
	))
	t.Run("an anonymous session is rejected", theory(
		When{noLogin: true, flags: users_setadmin.Flags{Grant: true}, userId: "user-2"},
		Then{err: session.ErrPermissionDenied, calls: 0},
	))
	t.Run("passing neither --grant nor --revoke is a usage error", theory(
		When{me: admin, flags: users_setadmin.Flags{}, userId: "user-2"},
		Then{err: flarc.ErrUsage, calls: 0},
	))
	t.Run("passing both --grant and --revoke is a usage error", theory(
		When{me: admin, flags: users_setadmin.Flags{Grant: true, Revoke: true}, userId: "user-2"},
		Then{err: flarc.ErrUsage, calls: 0},
	))
}
