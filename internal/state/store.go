package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/catalog"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Catalog             *catalog.Catalog
	Indices             []int // current card per domain
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int    // Number of consecutive load failures
	Revision            uint64 // bumped on every accepted catalog
}

// HasCatalog reports whether a catalog has been loaded.
func (s Snapshot) HasCatalog() bool {
	return s.Catalog != nil && len(s.Catalog.Domains) > 0
}

// IsOffline returns true when the catalog source has failed repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store owns the catalog and the per-domain card index.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog. When err is non-nil the previous data is
// kept but the error is recorded for visibility. Indices carry over by domain
// position and are clamped into the new domain sizes.
func (s *Store) Update(cat *catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil && cat == nil {
		err = catalog.ErrEmptyCatalog
	}
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	sizes := cat.Sizes()
	indices := make([]int, len(sizes))
	for i, size := range sizes {
		if i < len(s.snapshot.Indices) {
			indices[i] = clamp(s.snapshot.Indices[i], size)
		}
	}

	s.snapshot.Catalog = cat.Clone()
	s.snapshot.Indices = indices
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.Revision++
}

// Index returns the current card of domain, or 0 for an unknown domain.
func (s *Store) Index(domain int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if domain < 0 || domain >= len(s.snapshot.Indices) {
		return 0
	}
	return s.snapshot.Indices[domain]
}

// SetIndex moves domain to card idx and reports whether the value changed.
// Unknown domains and out-of-range cards are ignored.
func (s *Store) SetIndex(domain, idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if domain < 0 || domain >= len(s.snapshot.Indices) {
		return false
	}
	if idx < 0 || idx >= len(s.snapshot.Catalog.Domains[domain].Events) {
		return false
	}
	if s.snapshot.Indices[domain] == idx {
		return false
	}
	s.snapshot.Indices[domain] = idx
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = s.snapshot.Catalog.Clone()
	snap.Indices = append([]int(nil), s.snapshot.Indices...)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Binding exposes one domain's index as a carousel index source. notify, when
// set, runs after every change made through the binding.
func (s *Store) Binding(domain int, notify func(idx int)) Binding {
	return Binding{store: s, domain: domain, notify: notify}
}

// Ensure Binding implements carousel.IndexSource at compile time.
var _ carousel.IndexSource = Binding{}

// Binding is the parent side of a single carousel.
type Binding struct {
	store  *Store
	domain int
	notify func(idx int)
}

// Index implements carousel.IndexSource.
func (b Binding) Index() int {
	return b.store.Index(b.domain)
}

// SetIndex implements carousel.IndexSource.
func (b Binding) SetIndex(i int) {
	if b.store.SetIndex(b.domain, i) && b.notify != nil {
		b.notify(b.store.Index(b.domain))
	}
}

// Domain returns the bound domain position.
func (b Binding) Domain() int { return b.domain }

func clamp(idx, size int) int {
	switch {
	case size <= 0 || idx < 0:
		return 0
	case idx >= size:
		return size - 1
	default:
		return idx
	}
}
