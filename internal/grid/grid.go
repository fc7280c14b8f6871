package grid

import (
	"strconv"

	"github.com/rewined/labelgrid/internal/catalog"
)

// Grid owns the ordered, mutable collection of entry rows. It mints row ids,
// enforces the never-zero-rows invariant, and performs bulk replacement for
// CSV import.
type Grid struct {
	rows   []*Row
	nextID int
}

// New returns a grid holding a single blank row with quantity defaulted to 1.
func New() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Rows returns the rows in entry order. Callers must not reorder the slice.
func (g *Grid) Rows() []*Row {
	return g.rows
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	return len(g.rows)
}

// RowByID returns the row with the given id, or nil.
func (g *Grid) RowByID(id int) *Row {
	for _, r := range g.rows {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// AddRow appends a blank row with a freshly minted id and returns it. Ids are
// monotonic for the life of the grid and never reused after removal.
func (g *Grid) AddRow() *Row {
	r := newRow(g.nextID)
	g.nextID++
	g.rows = append(g.rows, r)
	return r
}

// RemoveRow removes the row with the given id and reports whether anything
// changed. Removing the only remaining row is a no-op: the grid never drops
// to zero rows.
func (g *Grid) RemoveRow(id int) bool {
	if len(g.rows) <= 1 {
		return false
	}
	for i, r := range g.rows {
		if r.ID == id {
			g.rows = append(g.rows[:i], g.rows[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveControlsVisible reports whether per-row remove controls should show.
// They hide whenever exactly one row remains.
func (g *Grid) RemoveControlsVisible() bool {
	return len(g.rows) > 1
}

// ReplaceAll clears the grid and recreates one pre-filled row per seed plus a
// trailing blank row so entry can continue. Row ids restart at zero.
func (g *Grid) ReplaceAll(seeds []Seed) {
	g.rows = nil
	g.nextID = 0
	for _, seed := range seeds {
		r := g.AddRow()
		r.SKU = seed.SKU
		r.Price = seed.Price
		if seed.Qty != "" {
			r.Qty = seed.Qty
		}
	}
	g.AddRow()
}

// Reset clears the grid back to exactly one blank row.
func (g *Grid) Reset() {
	g.rows = nil
	g.nextID = 0
	g.AddRow()
}

// Commit writes the row's highlighted candidate into the row and closes its
// dropdown. It returns the committed product so the caller can move focus to
// the quantity field.
func (g *Grid) Commit(row *Row) (catalog.Product, bool) {
	p, ok := row.Cursor.Selected()
	if !ok {
		return catalog.Product{}, false
	}
	row.SKU = p.SKU
	row.Price = strconv.FormatFloat(p.Price, 'f', 2, 64)
	row.Cursor.Close()
	return p, true
}
