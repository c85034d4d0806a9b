// Package session keeps the authenticated identity of one browser context
// and persists it to key-value storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/gate"
	"github.com/Yosipmikecolin/app-web-wesense/internal/seed"

	"go.uber.org/zap"
)

// Storage is the key-value store holding the serialized session user.
type Storage interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

// Directory resolves login emails to users.
type Directory interface {
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
}

// Options configure a Store.
type Options struct {
	Key        string
	LoginDelay time.Duration
	// Sleep replaces time.Sleep for the login delay; tests stub it.
	Sleep func(time.Duration)

	// IdleTTL and MaxStores bound the Registry. Zero disables each limit.
	IdleTTL   time.Duration
	MaxStores int
	// Now replaces time.Now for idle tracking.
	Now func() time.Time
}

// Snapshot is an immutable view of a store.
type Snapshot struct {
	State   gate.State
	User    *entities.User
	Loading bool
}

// Store holds at most one authenticated user.
type Store struct {
	log     *zap.SugaredLogger
	storage Storage
	dir     Directory
	key     string
	delay   time.Duration
	sleep   func(time.Duration)

	mu        sync.Mutex
	state     gate.State
	user      *entities.User
	loading   bool
	gen       uint64
	listeners map[int]func(Snapshot)
	nextID    int
}

// NewStore returns a store in the Initializing state. Call Restore before use.
func NewStore(log *zap.SugaredLogger, storage Storage, dir Directory, opts Options) *Store {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Store{
		log:       log.Named("session").With("key", opts.Key),
		storage:   storage,
		dir:       dir,
		key:       opts.Key,
		delay:     opts.LoginDelay,
		sleep:     sleep,
		state:     gate.Initializing,
		loading:   true,
		listeners: make(map[int]func(Snapshot)),
	}
}

// Restore loads the stored user. A missing, unreadable or corrupt entry
// yields an empty session; unreadable and corrupt entries are deleted.
func (s *Store) Restore(ctx context.Context) Snapshot {
	s.mu.Lock()
	if s.state != gate.Initializing || !s.loading || s.user != nil {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	event := gate.RestoreEmpty
	user, err := s.read(ctx)
	switch {
	case err == nil:
		s.user = user
		event = gate.Restored
	case errors.Is(err, entities.ErrKeyNotFound):
	default:
		s.log.Warnw("discarding stored session", "error", err)
		if delErr := s.storage.DeleteValue(ctx, s.key); delErr != nil {
			s.log.Errorw("failed to clear stored session", "error", delErr)
		}
	}

	s.apply(event)
	s.loading = false
	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return snap
}

func (s *Store) read(ctx context.Context) (*entities.User, error) {
	raw, err := s.storage.GetValue(ctx, s.key)
	if err != nil {
		return nil, err
	}
	var u entities.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if u.ID == "" {
		return nil, errors.New("decode session: empty user id")
	}
	return &u, nil
}

// Login authenticates email after the configured delay. The password is
// accepted but not checked. It returns false when no identity matches and
// ErrLoginInProgress when another login is pending.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	_ = password

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return false, entities.ErrLoginInProgress
	}
	prev := s.state
	s.apply(gate.LoginStarted)
	s.loading = true
	s.gen++
	gen := s.gen
	snap, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()
	notify(listeners, snap)

	// The delay and the lookup run to completion even if the request goes away.
	ctx = context.WithoutCancel(ctx)
	s.sleep(s.delay)

	user, lookupErr := s.lookup(ctx, strings.TrimSpace(email))

	s.mu.Lock()
	if s.gen != gen {
		// Logged out while pending.
		s.mu.Unlock()
		return false, nil
	}
	s.loading = false

	switch {
	case lookupErr != nil:
		s.restoreAfterFailure(prev)
	case user == nil:
		s.restoreAfterFailure(prev)
	default:
		s.user = user
		s.apply(gate.LoginSucceeded)
		s.persistLocked(ctx)
	}

	snap, listeners = s.snapshotLocked(), s.listenersLocked()
	ok := s.state == gate.Authenticated && user != nil
	s.mu.Unlock()
	notify(listeners, snap)

	if lookupErr != nil {
		return false, lookupErr
	}
	if ok {
		s.log.Infow("login succeeded", "user_id", user.ID)
	} else {
		s.log.Infow("login rejected", "email", email)
	}
	return ok, nil
}

// restoreAfterFailure keeps an existing session when a re-login fails.
func (s *Store) restoreAfterFailure(prev gate.State) {
	if prev == gate.Authenticated && s.user != nil {
		s.state = gate.Authenticated
		return
	}
	s.apply(gate.LoginFailed)
}

func (s *Store) lookup(ctx context.Context, email string) (*entities.User, error) {
	u, err := s.dir.FindUserByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		s.log.Errorw("failed to look up login email", "error", err)
		return nil, fmt.Errorf("find login user: %w", err)
	}
	if email == seed.FallbackEmail {
		fb := seed.Fallback()
		return &fb, nil
	}
	return nil, nil
}

func (s *Store) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.user)
	if err != nil {
		s.log.Errorw("failed to encode session", "error", err)
		return
	}
	if err := s.storage.SetValue(ctx, s.key, string(raw)); err != nil {
		s.log.Errorw("failed to persist session", "error", err)
	}
}

// Logout clears the session and its stored entry. A pending login is abandoned.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.gen++
	s.apply(gate.LoggedOut)
	if err := s.storage.DeleteValue(ctx, s.key); err != nil {
		s.log.Errorw("failed to clear stored session", "error", err)
	}
	snap, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	s.log.Infow("logged out")
}

func (s *Store) apply(e gate.Event) {
	next, err := gate.Transition(s.state, e)
	if err != nil {
		s.log.Warnw("unexpected session event", "error", err)
		return
	}
	s.log.Debugw("session transition", "from", s.state.String(), "to", next.String(), "event", e.String())
	s.state = next
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// User returns a copy of the session user or nil.
func (s *Store) User() *entities.User {
	return s.Snapshot().User
}

// Loading reports whether a restore or login is pending.
func (s *Store) Loading() bool {
	return s.Snapshot().Loading
}

// State returns the gate state of the session.
func (s *Store) State() gate.State {
	return s.Snapshot().State
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{State: s.state, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Subscribe registers fn for every committed change. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) listenersLocked() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []func(Snapshot), snap Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
