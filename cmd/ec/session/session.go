package session

import (
	"context"
	"errors"
	"fmt"

	apiusers "github.com/echo-commerce/echo-commerce/api/types/users"
	kprof "github.com/echo-commerce/echo-commerce/cmd/ec/config/profiles"
	krst "github.com/echo-commerce/echo-commerce/cmd/ec/rest"
)

// State of a Session.
//
// It starts at Unresolved, and moves to Anonymous or Authenticated exactly
// once, when Resolve is called. Login/Register move Anonymous sessions to
// Authenticated; Logout moves back to Anonymous.
type State int

const (
	Unresolved State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("unknown (%d)", int(s))
	}
}

var ErrNotResolved = errors.New("session is not resolved yet")
var ErrPermissionDenied = errors.New("permission denied")
var ErrNotLoggedIn = errors.New("not logged in")

// Session is the authentication state of one CLI invocation.
//
// It is an explicit value passed to whoever needs it, never ambient global
// state. The token it manages lives in the profile, and every transition
// which changes the token also persists the profile store.
type Session struct {
	state     State
	user      *apiusers.Detail
	prof      *kprof.Profile
	store     kprof.ProfileStore
	storePath string
}

// New creates an unresolved Session over prof.
//
// prof must be an entry of store; saving the store persists token changes.
func New(prof *kprof.Profile, store kprof.ProfileStore, storePath string) *Session {
	return &Session{
		state:     Unresolved,
		prof:      prof,
		store:     store,
		storePath: storePath,
	}
}

func (s *Session) State() State {
	return s.state
}

// User returns the authenticated user.
//
// The second value is false unless the session is Authenticated. Callers
// must not interpret (zero, false) before Resolve has completed; check
// State() when the distinction matters.
func (s *Session) User() (apiusers.Detail, bool) {
	if s.state != Authenticated || s.user == nil {
		return apiusers.Detail{}, false
	}
	return *s.user, true
}

// Resolve exchanges the stored token for a user record, once.
//
// With no stored token, or when the backend rejects the token, the session
// lands at Anonymous; a rejected token is also dropped from the profile.
// Transport failures leave the session Unresolved and are returned, so the
// caller can retry or give up.
//
// Calling Resolve on an already resolved session is a no-op.
func (s *Session) Resolve(ctx context.Context, client krst.Client) error {
	if s.state != Unresolved {
		return nil
	}

	if s.prof.Token == "" {
		s.state = Anonymous
		return nil
	}

	user, err := client.CurrentUser(ctx)
	if err == nil {
		s.user = &user
		s.state = Authenticated
		return nil
	}

	if errors.Is(err, krst.ErrUnauthorized) {
		// stale token. Drop it and continue anonymously.
		s.prof.Token = ""
		s.state = Anonymous
		if serr := s.store.Save(s.storePath); serr != nil {
			return fmt.Errorf("failed to drop the stale token: %w", serr)
		}
		return nil
	}

	return err
}

// Login exchanges credentials for a token, persists it, and authenticates
// the session. On failure the state is left as it was.
func (s *Session) Login(ctx context.Context, client krst.Client, username, password string) (apiusers.Detail, error) {
	auth, err := client.Login(ctx, username, password)
	if err != nil {
		return apiusers.Detail{}, err
	}
	return s.accept(auth)
}

// Register creates an account and logs the session in with it. On failure
// the state is left as it was.
func (s *Session) Register(ctx context.Context, client krst.Client, username, password string) (apiusers.Detail, error) {
	auth, err := client.Register(ctx, username, password)
	if err != nil {
		return apiusers.Detail{}, err
	}
	return s.accept(auth)
}

func (s *Session) accept(auth apiusers.AuthResponse) (apiusers.Detail, error) {
	s.prof.Token = auth.AccessToken
	if err := s.store.Save(s.storePath); err != nil {
		return apiusers.Detail{}, fmt.Errorf("failed to store the token: %w", err)
	}

	user := auth.User
	s.user = &user
	s.state = Authenticated
	return user, nil
}

// Logout drops the persisted token and returns to Anonymous.
//
// Logging out an anonymous session is not an error.
func (s *Session) Logout() error {
	s.user = nil
	s.state = Anonymous

	if s.prof.Token == "" {
		return nil
	}
	s.prof.Token = ""
	if err := s.store.Save(s.storePath); err != nil {
		return fmt.Errorf("failed to drop the token: %w", err)
	}
	return nil
}

// RequireUser resolves nothing; it only checks the session state.
//
// # Returns
//
// - ErrNotResolved before Resolve has completed.
//
// - ErrNotLoggedIn for anonymous sessions.
func (s *Session) RequireUser() (apiusers.Detail, error) {
	switch s.state {
	case Unresolved:
		return apiusers.Detail{}, ErrNotResolved
	case Anonymous:
		return apiusers.Detail{}, ErrNotLoggedIn
	}
	return *s.user, nil
}

// RequireAdmin gates admin-only operations.
//
// The page body (= the admin operation) runs only for a resolved session
// whose user has is_admin set; a missing user and a non-admin user are both
// ErrPermissionDenied. This is a UX convenience: the backend enforces the
// same rule on every admin endpoint regardless.
func (s *Session) RequireAdmin() (apiusers.Detail, error) {
	if s.state == Unresolved {
		return apiusers.Detail{}, ErrNotResolved
	}
	user, ok := s.User()
	if !ok || !user.IsAdmin {
		return apiusers.Detail{}, fmt.Errorf("%w: administrator only", ErrPermissionDenied)
	}
	return user, nil
}
