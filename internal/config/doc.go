// Package config handles loading and parsing the Marquee configuration file.
//
// # Overview
//
// Marquee reads a small TOML file that chooses where the event catalog comes
// from, where logs go, and how the carousels are paced. Every field is
// optional and the file itself may be absent.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Catalog: built-in (no events_file, no events_url)
//   - Poll interval: 30 seconds (remote catalogs only)
//   - Log file: ~/.local/state/marquee/marquee.log
//   - Log level: info
//   - Carousel: advance 10s, settle 400ms, quiet 140ms, resume 2s
//
// # TOML Format
//
//	events_file = "~/events.toml"   # or events_url, not both
//	# events_url = "http://127.0.0.1:8080/events.json"
//	poll_seconds = 30
//	log_file = "~/.local/state/marquee/marquee.log"
//	log_level = "debug"
//
//	[carousel]
//	advance_ms = 10000
//	settle_ms = 400
//	quiet_ms = 140
//	resume_ms = 2000
//
// Tilde expansion is performed on events_file and log_file. Non-positive
// carousel values fall back to their defaults.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, unknown log levels, and conflicting sources
//
// Missing config files are NOT an error.
package config
