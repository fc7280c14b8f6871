package grid

import (
	"math"
	"strconv"
	"strings"

	"github.com/rewined/labelgrid/internal/catalog"
)

// Item is a validated, catalog-enriched entry ready for submission.
type Item struct {
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CaseQty     int     `json:"case_qty"`
	Description string  `json:"description"`
}

// Collect scans rows in entry order and returns the valid ones as enriched
// items. A row survives when its trimmed SKU text is non-empty, its price
// parses to a finite non-negative number, and its quantity parses to an
// integer of at least one; anything else is silently dropped. Surviving rows
// pick up case quantity and description from the catalog when the SKU text
// resolves to a product, and default to case quantity 1 and an empty
// description when it does not. Identical SKUs are not deduplicated.
func Collect(rows []*Row, products []catalog.Product) []Item {
	var items []Item
	for _, row := range rows {
		sku := strings.TrimSpace(row.SKU)
		if sku == "" {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row.Price), 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(row.Qty))
		if err != nil || qty < 1 {
			continue
		}

		item := Item{SKU: sku, Price: price, Quantity: qty, CaseQty: 1}
		if p, ok := catalog.Find(sku, products); ok {
			item.CaseQty = p.CaseQty
			item.Description = p.Description
		}
		items = append(items, item)
	}
	return items
}

// LabelCount returns the total number of labels the items will produce.
func LabelCount(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
