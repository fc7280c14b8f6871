package grid

import (
	"reflect"
	"testing"

	"github.com/rewined/labelgrid/internal/catalog"
)

func TestCollect_UnknownSKUGetsDefaults(t *testing.T) {
	g := New()
	row := g.Rows()[0]
	row.SKU = "ABC"
	row.Price = "9.99"
	row.Qty = "3"

	items := Collect(g.Rows(), nil)

	want := []Item{{SKU: "ABC", Price: 9.99, Quantity: 3, CaseQty: 1, Description: ""}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("Collect = %#v, want %#v", items, want)
	}
}

func TestCollect_DropsInvalidRowsKeepsValidOnes(t *testing.T) {
	g := New()
	valid := g.Rows()[0]
	valid.SKU = "GOOD"
	valid.Price = "5"
	valid.Qty = "2"

	zeroQty := g.AddRow()
	zeroQty.SKU = "ZQ"
	zeroQty.Price = "5"
	zeroQty.Qty = "0"

	badPrice := g.AddRow()
	badPrice.SKU = "BP"
	badPrice.Price = "abc"
	badPrice.Qty = "1"

	negPrice := g.AddRow()
	negPrice.SKU = "NP"
	negPrice.Price = "-1"
	negPrice.Qty = "1"

	blankSKU := g.AddRow()
	blankSKU.SKU = "   "
	blankSKU.Price = "5"
	blankSKU.Qty = "1"

	items := Collect(g.Rows(), nil)
	if len(items) != 1 || items[0].SKU != "GOOD" {
		t.Fatalf("Collect = %#v, want only GOOD to survive", items)
	}
}

func TestCollect_TrimsAndParsesLooseInput(t *testing.T) {
	g := New()
	row := g.Rows()[0]
	row.SKU = "  abc  "
	row.Price = " 1.50 "
	row.Qty = " 2 "

	items := Collect(g.Rows(), nil)
	if len(items) != 1 {
		t.Fatalf("Collect dropped a valid row: %#v", items)
	}
	if items[0].SKU != "abc" || items[0].Price != 1.5 || items[0].Quantity != 2 {
		t.Fatalf("Collect = %#v, want trimmed abc/1.5/2", items[0])
	}
}

func TestCollect_EnrichesFromCatalog(t *testing.T) {
	products := []catalog.Product{
		{SKU: "CF1", Price: 10, Description: "Candle", CaseQty: 12},
	}

	g := New()
	row := g.Rows()[0]
	row.SKU = "cf1"
	row.Price = "10"
	row.Qty = "1"

	items := Collect(g.Rows(), products)
	if len(items) != 1 {
		t.Fatalf("Collect = %#v, want one item", items)
	}
	if items[0].CaseQty != 12 || items[0].Description != "Candle" {
		t.Fatalf("item = %#v, want case qty 12 and description Candle", items[0])
	}
}

func TestCollect_PreservesOrderAndDuplicates(t *testing.T) {
	g := New()
	first := g.Rows()[0]
	first.SKU = "DUP"
	first.Price = "1"
	first.Qty = "1"

	second := g.AddRow()
	second.SKU = "DUP"
	second.Price = "2"
	second.Qty = "1"

	items := Collect(g.Rows(), nil)
	if len(items) != 2 {
		t.Fatalf("Collect deduplicated: %#v", items)
	}
	if items[0].Price != 1 || items[1].Price != 2 {
		t.Fatalf("Collect reordered rows: %#v", items)
	}
}

func TestCollect_TypedQueryCommitEnrichmentEndToEnd(t *testing.T) {
	products := []catalog.Product{
		{SKU: "CF1", Price: 10, CaseQty: 12, Description: "Candle"},
	}

	g := New()
	row := g.Rows()[0]

	// Typing "cf" surfaces exactly one candidate.
	row.SKU = "cf"
	row.Cursor.SetCandidates(catalog.Match(row.SKU, products, catalog.DefaultMatchLimit))
	if got := len(row.Cursor.Candidates()); got != 1 {
		t.Fatalf("candidates for cf = %d, want 1", got)
	}

	// Selecting it populates the row's SKU and price.
	row.Cursor.Next()
	if _, ok := g.Commit(row); !ok {
		t.Fatalf("Commit failed")
	}
	if row.SKU != "CF1" || row.Price != "10.00" {
		t.Fatalf("row after commit = %+v, want CF1/10.00", row)
	}

	// The case quantity the user never typed reaches the collector.
	row.Qty = "2"
	items := Collect(g.Rows(), products)
	if len(items) != 1 || items[0].CaseQty != 12 {
		t.Fatalf("Collect = %#v, want case qty 12 from the catalog", items)
	}
}

func TestLabelCount(t *testing.T) {
	items := []Item{{Quantity: 2}, {Quantity: 3}}
	if got := LabelCount(items); got != 5 {
		t.Fatalf("LabelCount = %d, want 5", got)
	}
	if got := LabelCount(nil); got != 0 {
		t.Fatalf("LabelCount(nil) = %d, want 0", got)
	}
}
