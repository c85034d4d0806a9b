package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type entry struct {
	store *Store
	seen  time.Time
}

// Registry owns one Store per browser context. Stores idle for longer than
// Options.IdleTTL are dropped when a new context arrives, and reaching
// Options.MaxStores drops the least recently seen one. Stores with a pending
// login are never dropped. A dropped store is restored from storage on the
// next request of its context.
type Registry struct {
	log     *zap.SugaredLogger
	storage Storage
	dir     Directory
	opts    Options
	now     func() time.Time

	mu     sync.Mutex
	stores map[string]*entry
}

// NewRegistry builds a registry. opts.Key is the storage key prefix; each
// context stores its user under "<key>:<context id>".
func NewRegistry(log *zap.SugaredLogger, storage Storage, dir Directory, opts Options) *Registry {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Registry{
		log:     log.Named("session.registry"),
		storage: storage,
		dir:     dir,
		opts:    opts,
		now:     now,
		stores:  make(map[string]*entry),
	}
}

// Key returns the storage key used for contextID.
func (r *Registry) Key(contextID string) string {
	return r.opts.Key + ":" + contextID
}

// Get returns the store of contextID, creating and restoring it on first use.
// Concurrent callers may observe the new store while it is still Initializing.
func (r *Registry) Get(ctx context.Context, contextID string) *Store {
	now := r.now()

	r.mu.Lock()
	if e, ok := r.stores[contextID]; ok {
		e.seen = now
		r.mu.Unlock()
		return e.store
	}

	r.sweepLocked(now)
	if r.opts.MaxStores > 0 && len(r.stores) >= r.opts.MaxStores {
		r.evictOldestLocked()
	}

	opts := r.opts
	opts.Key = r.Key(contextID)
	st := NewStore(r.log, r.storage, r.dir, opts)
	r.stores[contextID] = &entry{store: st, seen: now}
	r.mu.Unlock()

	st.Subscribe(func(s Snapshot) {
		r.log.Debugw("session changed", "context_id", contextID, "state", s.State.String(), "loading", s.Loading)
	})
	st.Restore(ctx)
	return st
}

// sweepLocked drops stores idle for longer than IdleTTL. Stores with a
// pending restore or login are kept.
func (r *Registry) sweepLocked(now time.Time) {
	if r.opts.IdleTTL <= 0 {
		return
	}
	evicted := 0
	for id, e := range r.stores {
		if now.Sub(e.seen) > r.opts.IdleTTL && !e.store.Loading() {
			delete(r.stores, id)
			evicted++
		}
	}
	if evicted > 0 {
		r.log.Debugw("evicted idle sessions", "count", evicted, "live", len(r.stores))
	}
}

// evictOldestLocked drops the least recently seen store that is not loading.
func (r *Registry) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range r.stores {
		if e.store.Loading() {
			continue
		}
		if oldestID == "" || e.seen.Before(oldest) {
			oldestID, oldest = id, e.seen
		}
	}
	if oldestID != "" {
		delete(r.stores, oldestID)
		r.log.Debugw("evicted session at capacity", "context_id", oldestID)
	}
}

// Forget drops the in-memory store of contextID. Stored values are kept.
func (r *Registry) Forget(contextID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, contextID)
}

// Len returns the number of live stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
