// Package ui implements the labelgrid terminal interface with Bubble Tea.
//
// The entry view is a keyboard-driven grid of SKU/price/quantity rows with
// an autocomplete dropdown over the product catalog. The import view uploads
// a CSV to the label service for parsing and repopulates the grid from the
// result. The result view reports a finished generation run.
//
// Grid rows (internal/grid) are the single source of truth; the textinput
// widgets mirror them for editing and are synced back on every keystroke.
// The catalog is read from the shared store at match time so a load that
// completes mid-session takes effect on the next keystroke without touching
// open dropdown state.
package ui
