// Package state holds the reactive session state consumed by the guard
// and by user-facing commands: the cached user, the logged-in flag, and
// the has-the-initial-load-completed flag.
package state

import (
	"context"
	"sync"

	"github.com/learnhub/lmscli/internal/tokenstore"
	"github.com/learnhub/lmscli/types"
)

// Snapshot is a consistent view of the session state. While IsLoaded is
// false, IsLoggedIn is unknown rather than false; consumers must not act
// on it.
type Snapshot struct {
	User       *types.User
	IsLoggedIn bool
	IsLoaded   bool
}

// ProfileFetcher is the slice of the session manager the store depends on.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context) (types.User, error)
}

// Store is the tab-lifetime owner of the cached user. It is constructed
// and injected at the application entry point, never held in a package
// variable. Mutations are last-write-wins; subscribers always observe a
// consistent snapshot.
type Store struct {
	mu       sync.Mutex
	user     *types.User
	loggedIn bool
	loaded   bool
	nextSub  int
	subs     map[int]func(Snapshot)

	tokens  tokenstore.Store
	session ProfileFetcher
}

func New(tokens tokenstore.Store, session ProfileFetcher) *Store {
	return &Store{
		tokens:  tokens,
		session: session,
		subs:    make(map[int]func(Snapshot)),
	}
}

// Init performs the initial load. Without a stored token it settles to
// logged-out immediately, with no network call. With one it confirms the
// session via the profile fetch. Either way the loaded flag flips true
// exactly once and never resets.
func (s *Store) Init(ctx context.Context) {
	if _, err := s.tokens.Read(); err != nil {
		s.apply(nil, false)
		return
	}

	user, err := s.session.FetchProfile(ctx)
	if err != nil {
		s.apply(nil, false)
		return
	}
	s.apply(&user, true)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for every subsequent state change and returns its
// cancel function. fn is invoked outside the store lock.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SetUser replaces the cached user without a re-fetch, the mutation path
// used after a profile edit. The logged-in flag is untouched.
func (s *Store) SetUser(user *types.User) {
	s.mu.Lock()
	if user != nil {
		copied := *user
		s.user = &copied
	} else {
		s.user = nil
	}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

// ApplyLogin records a confirmed login.
func (s *Store) ApplyLogin(user types.User) {
	s.apply(&user, true)
}

// ClearSession records a logout or invalidated token.
func (s *Store) ClearSession() {
	s.apply(nil, false)
}

func (s *Store) apply(user *types.User, loggedIn bool) {
	s.mu.Lock()
	if user != nil {
		copied := *user
		s.user = &copied
	} else {
		s.user = nil
	}
	s.loggedIn = loggedIn
	s.loaded = true
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, snap)
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{IsLoggedIn: s.loggedIn, IsLoaded: s.loaded}
	if s.user != nil {
		copied := *s.user
		snap.User = &copied
	}
	return snap
}

func (s *Store) subscribersLocked() []func(Snapshot) {
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
