package loader

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/bibliofile/bibliofile/internal/vault"
	"github.com/bibliofile/bibliofile/pkg/types"
)

// ErrClosed is returned by Refresh after the loader has been closed.
var ErrClosed = errors.New("loader is closed")

// State is the loader's position in its reload cycle.
type State uint8

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Source enumerates the raw documents of one catalog. The vault scanner
// is the production implementation.
type Source interface {
	Scan(ctx context.Context) ([]vault.Document, error)
}

// Loader drives the reload cycle: Idle -> Loading -> Ready, with a
// self-loop when a change arrives mid-load. At most one load runs at a
// time; changes observed during a load mark the loader dirty and exactly
// one follow-up cycle runs when the current one completes, so no change
// is lost and no two scans interleave.
type Loader struct {
	source Source
	schema types.CatalogSchema
	store  *Store
	log    *slog.Logger

	mu     sync.Mutex
	state  State
	dirty  bool
	closed bool
	subs   map[string]chan Snapshot
}

// New creates a loader over the given source and schema. The schema must
// already be validated.
func New(source Source, schema types.CatalogSchema, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		source: source,
		schema: schema,
		store:  NewStore(),
		log:    logger,
		subs:   make(map[string]chan Snapshot),
	}
}

// State returns the current loader state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Snapshot returns the last published revision and item set. Before the
// first completed load this is revision zero with no items.
func (l *Loader) Snapshot() Snapshot {
	return l.store.Snapshot()
}

// Subscribe registers a consumer of published snapshots. The returned
// channel has a one-slot latest-wins buffer: a slow consumer observes
// the newest snapshot, not an unbounded backlog. The channel is closed
// on Unsubscribe or Close.
func (l *Loader) Subscribe() (string, <-chan Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := uuid.NewString()
	ch := make(chan Snapshot, 1)
	if l.closed {
		close(ch)
		return id, ch
	}
	l.subs[id] = ch
	return id, ch
}

// Unsubscribe releases a subscription. Unknown IDs are a no-op.
func (l *Loader) Unsubscribe(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ch, ok := l.subs[id]; ok {
		delete(l.subs, id)
		close(ch)
	}
}

// Notify signals that the document set changed. The reload it triggers
// runs asynchronously; if a load is already in flight the notification
// coalesces into the dirty flag instead of starting a second scan.
func (l *Loader) Notify() {
	if !l.beginLoad() {
		return
	}
	go l.run(context.Background())
}

// Refresh runs a reload synchronously and returns the first cycle's
// error, if any. When a load is already in flight, Refresh only marks
// the loader dirty and returns nil; the in-flight cycle picks it up.
func (l *Loader) Refresh(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.mu.Unlock()
	if !l.beginLoad() {
		return nil
	}
	return l.run(ctx)
}

// Close releases all subscriptions. An in-flight load completes but no
// further loads start.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.dirty = false
	for id, ch := range l.subs {
		delete(l.subs, id)
		close(ch)
	}
}

// beginLoad transitions to Loading, or records a pending reload when one
// is already running. Returns true when the caller owns the new cycle.
func (l *Loader) beginLoad() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	if l.state == StateLoading {
		l.dirty = true
		return false
	}
	l.state = StateLoading
	return true
}

// run executes load cycles until the dirty flag stays clear, then leaves
// Loading. A cycle is never cancelled by a newer change; it completes
// and the coalescing rule allows at most one redundant follow-up.
func (l *Loader) run(ctx context.Context) error {
	var firstErr error
	for {
		err := l.loadOnce(ctx)
		if firstErr == nil {
			firstErr = err
		}

		l.mu.Lock()
		if l.dirty && !l.closed {
			l.dirty = false
			l.mu.Unlock()
			continue
		}
		if err != nil {
			// Keep the last successfully published set; stale-but-valid
			// beats an abrupt empty state. The next notification retries.
			l.state = StateIdle
		} else {
			l.state = StateReady
		}
		l.mu.Unlock()
		return firstErr
	}
}

// loadOnce scans the source, rebuilds the item set, and publishes it
// together with the next revision.
func (l *Loader) loadOnce(ctx context.Context) error {
	docs, err := l.source.Scan(ctx)
	if err != nil {
		l.log.Error("catalog reload failed, keeping previous snapshot",
			"catalog", l.schema.CatalogName, "error", err)
		return err
	}

	items := buildItems(docs, l.schema, l.log)
	snap := l.store.publish(items)
	l.log.Info("catalog reloaded",
		"catalog", l.schema.CatalogName, "revision", snap.Revision, "items", len(snap.Items))
	l.broadcast(snap)
	return nil
}

// broadcast delivers a snapshot to every subscriber, replacing any
// undelivered older snapshot in the subscriber's slot.
func (l *Loader) broadcast(snap Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
