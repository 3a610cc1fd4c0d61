// Package state provides thread-safe state management for the Marquee
// application.
//
// # Overview
//
// The Store is the single owner of two things: the event catalog currently on
// display and, for each domain, the index of the card that is showing. The
// carousel engines never own their index; they read and propose it through a
// Binding, which makes the Store the "parent" of every carousel.
//
// # Architecture
//
//	Producer (catalog poller / watcher):     Consumer (UI event loop):
//	┌────────────────────┐                  ┌─────────────────────────┐
//	│ Client.Fetch()     │                  │ store.Snapshot()        │
//	│ LoadFile()         │                  │   Revision changed?     │
//	│      ↓             │                  │   → Engine.SetItems     │
//	│ store.Update()     │───────────────→  │   → Engine.IndexChanged │
//	└────────────────────┘     (mutex)      │ Binding.SetIndex()      │
//	                                        └─────────────────────────┘
//
// # Update Semantics
//
//	// Success case: replace catalog, carry indices over
//	store.Update(cat, nil)
//	→ snapshot.Catalog = clone(cat)
//	→ snapshot.Indices[i] = clamp(old[i], len(cat.Domains[i].Events))
//	→ snapshot.Revision++
//
//	// Error case: keep old data, record error
//	store.Update(nil, err)
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// # Bindings
//
// Store.Binding(domain, notify) returns a value implementing
// carousel.IndexSource. SetIndex through a binding calls notify with the new
// index only when the value actually changed; the UI wires notify to
// Engine.IndexChanged so engine commits and keyboard jumps both reach the
// reconciliation rule. Unknown domains and out-of-range indices are ignored.
//
// # Concurrency Model
//
// All methods are safe for concurrent use. The notify callback runs on the
// caller's goroutine after the lock is released, so a binding must only be
// used from the goroutine that owns the engine it feeds.
package state
