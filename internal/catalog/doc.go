// Package catalog defines the event catalog shown by Marquee and the ways to
// obtain one.
//
// # Overview
//
// A Catalog is an ordered list of domains ("Managerial Events", "Robotics
// Events", ...), each holding the events displayed in one carousel. Every
// domain must contain at least one event; Validate reports the ones that
// don't so a bad file never reaches the carousel engine.
//
// # Sources
//
//   - Default(): built-in catalog, used when nothing is configured
//   - LoadFile(path): a .json or .toml document on disk
//   - Client.Fetch(ctx): a JSON document served over HTTP
//   - Watch(ctx, path, fn): reloads a file whenever it changes
//
// # Document Format
//
// JSON:
//
//	{"domains": [
//	  {"name": "Robotics Events", "events": [
//	    {"name": "Robo Wars", "about": "Combat robots in a caged arena."}
//	  ]}
//	]}
//
// TOML:
//
//	[[domains]]
//	name = "Robotics Events"
//
//	[[domains.events]]
//	name = "Robo Wars"
//	about = "Combat robots in a caged arena."
//
// Names and descriptions are trimmed on load.
//
// # Identifiers
//
// Domain.Slug lower-cases the domain name and joins its words with dashes.
// Cards are identified as <slug>-card-<index>, which the UI uses as click
// zone ids.
//
// # Error Handling
//
// All errors are wrapped with context:
//   - "read catalog: ..." for file access failures
//   - "parse catalog: ..." for malformed documents
//   - "invalid catalog: ..." wrapping ErrEmptyCatalog or carousel.ErrNoItems
//   - "catalog <path> returned status <code>" for HTTP failures
package catalog
