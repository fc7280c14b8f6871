// Package grid implements the item-entry core: the row collection and its
// lifecycle, the per-row autocomplete selection cursor, and the collector
// that turns rows into validated, catalog-enriched items.
package grid
