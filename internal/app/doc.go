// Package app provides the orchestration layer for labelgrid.
//
// Run wires configuration, preferences, the toolkit client, the shared
// catalog store, and the UI into a running program:
//
//  1. Load config from ~/.config/labelgrid/config.toml (env overrides apply)
//  2. Load user preferences (theme, last-used label format)
//  3. Initialize the HTTP client for the label toolkit service
//  4. Create the shared state.Store and kick off the one-shot catalog load
//  5. Start the TUI and block until the user exits or the context cancels
//
// The catalog load is fire-and-forget: the UI starts immediately and
// autocomplete returns no matches until the load lands in the store. A
// failed or empty load silently falls back to the built-in seed catalog so
// the grid stays usable with no backend at all. Only config parse errors and
// client construction errors are fatal.
package app
