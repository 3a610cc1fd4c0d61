// Package app provides the orchestration layer for the Marquee application.
//
// # Overview
//
// This package wires together configuration, logging, the catalog source,
// shared state, and the UI. It is the composition root where dependencies
// are created and connected.
//
// # Startup
//
//  1. Load ~/.config/marquee/config.toml and apply command-line overrides
//  2. Point the global zerolog logger at the log file
//  3. Load UI preferences (theme, auto-advance)
//  4. Fill the state.Store from the catalog source and keep it current
//  5. Start the TUI and block until the user quits or the context cancels
//
// # Catalog Sources
//
//	┌────────────────┐
//	│ startSource()  │
//	└───────┬────────┘
//	        ├─> events_url   catalog.Client + StartPoller (backoff on failure)
//	        ├─> events_file  catalog.LoadFile + catalog.Watch (fsnotify)
//	        └─> neither      catalog.Default()
//
// Every source writes through state.Store.Update; the UI polls Snapshot once
// a second and picks up new revisions.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file or conflicting overrides
//   - Log file that cannot be created
//   - Events file that is missing or invalid at startup
//   - Malformed events URL
//
// Recoverable errors (logged, previous catalog kept):
//   - Failed or invalid remote fetches
//   - Edits that leave the events file invalid
//
// # Polling Behavior
//
// The poller fetches immediately, then every PollInterval (default 30
// seconds). Each consecutive failure doubles the wait, capped at five
// minutes; the first success resets it.
package app
