// Package loader keeps the in-memory catalog item store consistent with
// the vault. It owns the reload state machine: change notifications
// trigger full rescans, concurrent notifications coalesce into at most
// one follow-up cycle, and every completed cycle atomically publishes a
// fresh item set under a new revision.
package loader

import (
	"sync"

	"github.com/bibliofile/bibliofile/pkg/types"
)

// Snapshot pairs a published item set with the revision it belongs to.
// The pair is always replaced together; readers never see a revision
// number alongside the wrong item set.
type Snapshot struct {
	Revision uint64
	Items    []*types.CatalogItem
}

// Store holds the current catalog item set. The only mutation is the
// whole-set swap performed once per completed reload cycle; the mutex is
// held only for the swap, never for scan or coercion work.
type Store struct {
	mu       sync.RWMutex
	revision uint64
	items    []*types.CatalogItem
}

// NewStore returns an empty store at revision zero.
func NewStore() *Store {
	return &Store{items: []*types.CatalogItem{}}
}

// Snapshot returns the current revision and item set. The returned slice
// is the published snapshot itself; it is never mutated after publish,
// so callers may read it freely.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Revision: s.revision, Items: s.items}
}

// Revision returns the current revision.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// publish replaces the item set and bumps the revision by exactly one.
func (s *Store) publish(items []*types.CatalogItem) Snapshot {
	if items == nil {
		items = []*types.CatalogItem{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revision++
	s.items = items
	return Snapshot{Revision: s.revision, Items: s.items}
}
