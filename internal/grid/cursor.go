package grid

import "github.com/rewined/labelgrid/internal/catalog"

// Cursor tracks which autocomplete candidate, if any, is highlighted for one
// row. It is closed, open with nothing selected, or open at an index into the
// current candidate list. Every row owns its own cursor; nothing here imposes
// cross-row exclusivity.
//
// Arrow keys clamp at both ends of the list rather than wrapping.
type Cursor struct {
	candidates []catalog.Product
	index      int
	open       bool
}

// SetCandidates replaces the candidate list for a freshly typed query. A
// non-empty list opens the cursor with nothing selected; an empty list closes
// it.
func (c *Cursor) SetCandidates(candidates []catalog.Product) {
	c.candidates = candidates
	c.index = -1
	c.open = len(candidates) > 0
}

// Close dismisses the dropdown unconditionally.
func (c *Cursor) Close() {
	c.candidates = nil
	c.index = -1
	c.open = false
}

// IsOpen reports whether a candidate list is showing.
func (c *Cursor) IsOpen() bool {
	return c.open
}

// Candidates returns the current candidate list.
func (c *Cursor) Candidates() []catalog.Product {
	return c.candidates
}

// Index returns the highlighted candidate index, or -1 when none is selected.
func (c *Cursor) Index() int {
	if !c.open {
		return -1
	}
	return c.index
}

// Next moves the highlight down one candidate, selecting the first when none
// is selected and staying on the last at the end of the list.
func (c *Cursor) Next() {
	if !c.open || len(c.candidates) == 0 {
		return
	}
	if c.index < 0 {
		c.index = 0
		return
	}
	if c.index+1 < len(c.candidates) {
		c.index++
	}
}

// Prev moves the highlight up one candidate, selecting the last when none is
// selected and staying on the first at the top of the list.
func (c *Cursor) Prev() {
	if !c.open || len(c.candidates) == 0 {
		return
	}
	if c.index < 0 {
		c.index = len(c.candidates) - 1
		return
	}
	if c.index > 0 {
		c.index--
	}
}

// Selected returns the highlighted candidate, if any.
func (c *Cursor) Selected() (catalog.Product, bool) {
	if !c.open || c.index < 0 || c.index >= len(c.candidates) {
		return catalog.Product{}, false
	}
	return c.candidates[c.index], true
}
