package grid

import (
	"testing"

	"github.com/rewined/labelgrid/internal/catalog"
)

func threeCandidates() []catalog.Product {
	return []catalog.Product{
		{SKU: "A", Price: 1},
		{SKU: "B", Price: 2},
		{SKU: "C", Price: 3},
	}
}

func TestCursor_SetCandidatesOpensUnselected(t *testing.T) {
	var c Cursor
	c.SetCandidates(threeCandidates())
	if !c.IsOpen() {
		t.Fatalf("cursor closed after SetCandidates with 3 candidates")
	}
	if c.Index() != -1 {
		t.Fatalf("Index() = %d after open, want -1 (none selected)", c.Index())
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("Selected() = true with nothing highlighted")
	}
}

func TestCursor_EmptyCandidatesCloses(t *testing.T) {
	var c Cursor
	c.SetCandidates(threeCandidates())
	c.SetCandidates(nil)
	if c.IsOpen() {
		t.Fatalf("cursor open after SetCandidates(nil)")
	}
}

func TestCursor_NextClampsAtEnd(t *testing.T) {
	var c Cursor
	c.SetCandidates(threeCandidates())

	// Three presses from none-selected land on the last candidate and stay.
	c.Next()
	c.Next()
	c.Next()
	if c.Index() != 2 {
		t.Fatalf("Index() = %d after three Next, want clamp at 2", c.Index())
	}
	c.Next()
	if c.Index() != 2 {
		t.Fatalf("Index() = %d after fourth Next, want to stay at 2", c.Index())
	}
}

func TestCursor_PrevFromNoneSelectsLast(t *testing.T) {
	var c Cursor
	c.SetCandidates(threeCandidates())
	c.Prev()
	if c.Index() != 2 {
		t.Fatalf("Index() = %d after Prev from none, want last candidate", c.Index())
	}
}

func TestCursor_PrevClampsAtStart(t *testing.T) {
	var c Cursor
	c.SetCandidates(threeCandidates())
	c.Next()
	c.Prev()
	c.Prev()
	if c.Index() != 0 {
		t.Fatalf("Index() = %d, want clamp at 0", c.Index())
	}
}

func TestCursor_CloseDiscardsEverything(t *testing.T) {
	var c Cursor
	c.SetCandidates(threeCandidates())
	c.Next()
	c.Close()
	if c.IsOpen() || c.Index() != -1 || len(c.Candidates()) != 0 {
		t.Fatalf("Close left state behind: open=%v index=%d candidates=%d",
			c.IsOpen(), c.Index(), len(c.Candidates()))
	}
}

func TestCursor_NavigationIgnoredWhenClosed(t *testing.T) {
	var c Cursor
	c.Next()
	c.Prev()
	if c.IsOpen() || c.Index() != -1 {
		t.Fatalf("navigation on closed cursor changed state")
	}
}

func TestGridCommit_WritesCandidateIntoRow(t *testing.T) {
	g := New()
	row := g.Rows()[0]
	row.SKU = "ca"
	row.Cursor.SetCandidates([]catalog.Product{
		{SKU: "CF1", Price: 10, Description: "Candle", CaseQty: 12},
	})
	row.Cursor.Next()

	p, ok := g.Commit(row)
	if !ok {
		t.Fatalf("Commit = false with a highlighted candidate")
	}
	if p.SKU != "CF1" {
		t.Fatalf("committed product = %q, want CF1", p.SKU)
	}
	if row.SKU != "CF1" {
		t.Fatalf("row SKU = %q after commit, want CF1", row.SKU)
	}
	if row.Price != "10.00" {
		t.Fatalf("row price = %q after commit, want 10.00", row.Price)
	}
	if row.Cursor.IsOpen() {
		t.Fatalf("dropdown still open after commit")
	}
}

func TestGridCommit_NoSelectionIsNoOp(t *testing.T) {
	g := New()
	row := g.Rows()[0]
	row.SKU = "ca"
	row.Cursor.SetCandidates(threeCandidates())

	if _, ok := g.Commit(row); ok {
		t.Fatalf("Commit succeeded with nothing highlighted")
	}
	if row.SKU != "ca" {
		t.Fatalf("row SKU changed on no-op commit: %q", row.SKU)
	}
}
