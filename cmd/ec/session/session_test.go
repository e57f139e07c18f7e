package session_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/echo-commerce/echo-commerce/api/types/misc/rfctime"
	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	kprof "github.com/echo-commerce/echo-commerce/cmd/ec/config/profiles"
	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
	"github.com/echo-commerce/echo-commerce/cmd/ec/rest/mock"
	"github.com/echo-commerce/echo-commerce/cmd/ec/session"
	"github.com/echo-commerce/echo-commerce/pkg/utils/try"
)

func storeOver(t *testing.T, prof *kprof.Profile) (kprof.ProfileStore, string) {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "profile")
	store := kprof.ProfileStore{"default": prof}
	return store, storePath
}

func TestSession_Resolve(t *testing.T) {
	someUser := apiusers.Detail{
		Id:       "user-1",
		Username: "alice",
		IsAdmin:  false,
		CreatedAt: try.To(rfctime.ParseRFC3339DateTime(
			"2024-04-01T12:00:00+00:00",
		)).OrFatal(t),
	}

	t.Run("with no stored token, it resolves to Anonymous without calling the backend", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)

		testee := session.New(prof, store, storePath)
		if testee.State() != session.Unresolved {
			t.Fatalf("new session is not Unresolved: %s", testee.State())
		}

		if err := testee.Resolve(context.Background(), client); err != nil {
			t.Fatal(err)
		}

		if testee.State() != session.Anonymous {
			t.Errorf("state is not Anonymous: %s", testee.State())
		}
		if client.Calls.CurrentUser != 0 {
			t.Errorf("CurrentUser should not be called (actual = %d)", client.Calls.CurrentUser)
		}
	})

	t.Run("with a valid token, it resolves to Authenticated", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api", Token: "valid-token"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)
		client.Impl.CurrentUser = func(ctx context.Context) (apiusers.Detail, error) {
			return someUser, nil
		}

		testee := session.New(prof, store, storePath)
		if err := testee.Resolve(context.Background(), client); err != nil {
			t.Fatal(err)
		}

		if testee.State() != session.Authenticated {
			t.Errorf("state is not Authenticated: %s", testee.State())
		}
		user, ok := testee.User()
		if !ok {
			t.Fatal("no user on an authenticated session")
		}
		if !user.Equal(someUser) {
			t.Errorf("user is wrong (actual, expected): %v, %v", user, someUser)
		}
	})

	t.Run("with a rejected token, it drops the token and resolves to Anonymous", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api", Token: "stale-token"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)
		client.Impl.CurrentUser = func(ctx context.Context) (apiusers.Detail, error) {
			return apiusers.Detail{}, fmt.Errorf("%w: token expired", krst.ErrUnauthorized)
		}

		testee := session.New(prof, store, storePath)
		if err := testee.Resolve(context.Background(), client); err != nil {
			t.Fatal(err)
		}

		if testee.State() != session.Anonymous {
			t.Errorf("state is not Anonymous: %s", testee.State())
		}
		if prof.Token != "" {
			t.Errorf("stale token is not dropped: %s", prof.Token)
		}

		persisted := try.To(kprof.LoadProfileStore(storePath)).OrFatal(t)
		if persisted["default"].Token != "" {
			t.Errorf("dropped token is persisted: %s", persisted["default"].Token)
		}
	})

	t.Run("on a transport failure, it stays Unresolved and returns the error", func(t *testing.T) {
		expectedErr := errors.New("connection refused")
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api", Token: "some-token"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)
		client.Impl.CurrentUser = func(ctx context.Context) (apiusers.Detail, error) {
			return apiusers.Detail{}, expectedErr
		}

		testee := session.New(prof, store, storePath)
		err := testee.Resolve(context.Background(), client)
		if !errors.Is(err, expectedErr) {
			t.Errorf("error is not propagated: %v", err)
		}

		if testee.State() != session.Unresolved {
			t.Errorf("state is not Unresolved: %s", testee.State())
		}
		if prof.Token != "some-token" {
			t.Errorf("token should be kept on transport failures: %s", prof.Token)
		}
	})

	t.Run("resolving twice is a no-op", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api", Token: "valid-token"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)
		client.Impl.CurrentUser = func(ctx context.Context) (apiusers.Detail, error) {
			return someUser, nil
		}

		testee := session.New(prof, store, storePath)
		if err := testee.Resolve(context.Background(), client); err != nil {
			t.Fatal(err)
		}
		if err := testee.Resolve(context.Background(), client); err != nil {
			t.Fatal(err)
		}

		if client.Calls.CurrentUser != 1 {
			t.Errorf("CurrentUser should be called once (actual = %d)", client.Calls.CurrentUser)
		}
	})
}

func TestSession_LoginAndLogout(t *testing.T) {
	someUser := apiusers.Detail{
		Id:       "user-1",
		Username: "alice",
		IsAdmin:  false,
		CreatedAt: try.To(rfctime.ParseRFC3339DateTime(
			"2024-04-01T12:00:00+00:00",
		)).OrFatal(t),
	}

	t.Run("a successful login persists the token and authenticates", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)
		client.Impl.Login = func(ctx context.Context, username, password string) (apiusers.AuthResponse, error) {
			return apiusers.AuthResponse{
				AccessToken: "fresh-token", TokenType: "bearer", User: someUser,
			}, nil
		}

		testee := session.New(prof, store, storePath)

		user := try.To(testee.Login(
			context.Background(), client, "alice", "open sesame",
		)).OrFatal(t)

		if !user.Equal(someUser) {
			t.Errorf("user is wrong (actual, expected): %v, %v", user, someUser)
		}
		if testee.State() != session.Authenticated {
			t.Errorf("state is not Authenticated: %s", testee.State())
		}

		persisted := try.To(kprof.LoadProfileStore(storePath)).OrFatal(t)
		if persisted["default"].Token != "fresh-token" {
			t.Errorf("token is not persisted: %s", persisted["default"].Token)
		}
	})

	t.Run("a failed login leaves the state as it was", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)
		client.Impl.Login = func(ctx context.Context, username, password string) (apiusers.AuthResponse, error) {
			return apiusers.AuthResponse{}, errors.New("credentials are rejected")
		}

		testee := session.New(prof, store, storePath)
		if err := testee.Resolve(context.Background(), client); err != nil {
			t.Fatal(err)
		}

		if _, err := testee.Login(context.Background(), client, "alice", "wrong"); err == nil {
			t.Errorf("no error occured")
		}

		if testee.State() != session.Anonymous {
			t.Errorf("state is not Anonymous: %s", testee.State())
		}
		if prof.Token != "" {
			t.Errorf("token should not be stored: %s", prof.Token)
		}
	})

	t.Run("register behaves as login with the created account", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)
		client.Impl.Register = func(ctx context.Context, username, password string) (apiusers.AuthResponse, error) {
			return apiusers.AuthResponse{
				AccessToken: "fresh-token", TokenType: "bearer", User: someUser,
			}, nil
		}

		testee := session.New(prof, store, storePath)

		user := try.To(testee.Register(
			context.Background(), client, "alice", "open sesame",
		)).OrFatal(t)

		if !user.Equal(someUser) {
			t.Errorf("user is wrong (actual, expected): %v, %v", user, someUser)
		}
		if testee.State() != session.Authenticated {
			t.Errorf("state is not Authenticated: %s", testee.State())
		}
	})

	t.Run("logout drops the token and returns to Anonymous", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api", Token: "valid-token"}
		store, storePath := storeOver(t, prof)
		client := mock.New(t)
		client.Impl.CurrentUser = func(ctx context.Context) (apiusers.Detail, error) {
			return someUser, nil
		}

		testee := session.New(prof, store, storePath)
		if err := testee.Resolve(context.Background(), client); err != nil {
			t.Fatal(err)
		}

		if err := testee.Logout(); err != nil {
			t.Fatal(err)
		}

		if testee.State() != session.Anonymous {
			t.Errorf("state is not Anonymous: %s", testee.State())
		}
		if _, ok := testee.User(); ok {
			t.Errorf("user should be dropped on logout")
		}

		persisted := try.To(kprof.LoadProfileStore(storePath)).OrFatal(t)
		if persisted["default"].Token != "" {
			t.Errorf("token is not dropped: %s", persisted["default"].Token)
		}
	})

	t.Run("logging out an anonymous session is not an error", func(t *testing.T) {
		prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api"}
		store, storePath := storeOver(t, prof)

		testee := session.New(prof, store, storePath)
		if err := testee.Logout(); err != nil {
			t.Fatal(err)
		}
		if testee.State() != session.Anonymous {
			t.Errorf("state is not Anonymous: %s", testee.State())
		}
	})
}

func TestSession_Gates(t *testing.T) {
	type When struct {
		resolveAs *apiusers.Detail // nil: leave unresolved
	}
	type Then struct {
		userErr  error
		adminErr error
	}

	plainUser := apiusers.Detail{Id: "user-1", Username: "alice", IsAdmin: false}
	adminUser := apiusers.Detail{Id: "user-2", Username: "root", IsAdmin: true}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			prof := &kprof.Profile{ApiRoot: "http://api.example:8080/api"}
			store, storePath := storeOver(t, prof)
			client := mock.New(t)

			testee := session.New(prof, store, storePath)
			if when.resolveAs != nil {
				if when.resolveAs.Id != "" {
					prof.Token = "valid-token"
					client.Impl.CurrentUser = func(ctx context.Context) (apiusers.Detail, error) {
						return *when.resolveAs, nil
					}
				}
				if err := testee.Resolve(context.Background(), client); err != nil {
					t.Fatal(err)
				}
			}

			if _, err := testee.RequireUser(); !errors.Is(err, then.userErr) {
				t.Errorf(
					"RequireUser is wrong (actual, expected): %v, %v",
					err, then.userErr,
				)
			}
			if _, err := testee.RequireAdmin(); !errors.Is(err, then.adminErr) {
				t.Errorf(
					"RequireAdmin is wrong (actual, expected): %v, %v",
					err, then.adminErr,
				)
			}
		}
	}

	t.Run("an unresolved session passes neither gate", theory(
		When{resolveAs: nil},
		Then{userErr: session.ErrNotResolved, adminErr: session.ErrNotResolved},
	))
	t.Run("an anonymous session passes neither gate", theory(
		When{resolveAs: &apiusers.Detail{}},
		Then{userErr: session.ErrNotLoggedIn, adminErr: session.ErrPermissionDenied},
	))
	t.Run("a plain user passes the user gate only", theory(
		When{resolveAs: &plainUser},
		Then{userErr: nil, adminErr: session.ErrPermissionDenied},
	))
	t.Run("an admin passes both gates", theory(
		When{resolveAs: &adminUser},
		Then{userErr: nil, adminErr: nil},
	))
}
