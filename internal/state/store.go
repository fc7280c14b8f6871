package state

import (
	"sync"
	"time"

	"github.com/rewined/labelgrid/internal/catalog"
)

// Source identifies where the catalog snapshot came from.
type Source int

const (
	// SourceNone means the load has not completed yet.
	SourceNone Source = iota
	// SourceRemote means the catalog came from the label service.
	SourceRemote
	// SourceFallback means the built-in seed list is in use.
	SourceFallback
)

// Snapshot is the catalog data available to the UI at one instant.
type Snapshot struct {
	Products []catalog.Product
	Source   Source
	LoadedAt time.Time
}

// Loaded reports whether the one-shot catalog load has finished.
func (s Snapshot) Loaded() bool {
	return s.Source != SourceNone
}

// Store coordinates the background catalog loader and the UI. The UI reads a
// fresh snapshot at match time rather than caching candidate lists, so a load
// that completes mid-session never clobbers in-progress dropdown state.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog.
func (s *Store) Update(products []catalog.Product, source Source) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Products = cloneProducts(products)
	s.snapshot.Source = source
	s.snapshot.LoadedAt = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Products = cloneProducts(s.snapshot.Products)
	return snap
}

func cloneProducts(products []catalog.Product) []catalog.Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]catalog.Product, len(products))
	copy(dup, products)
	return dup
}
