package catalog

// Product is one sellable entry in the catalog. Products are loaded once per
// session and never mutated afterwards.
type Product struct {
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CaseQty     int     `json:"case_qty"`
	ID          string  `json:"id,omitempty"`
}

// Normalize fills in defaults the remote source may omit. A product without a
// usable case quantity sells as single units.
func Normalize(products []Product) []Product {
	for i := range products {
		if products[i].CaseQty < 1 {
			products[i].CaseQty = 1
		}
	}
	return products
}

// Fallback returns the built-in seed catalog used when the remote source is
// unreachable or returns nothing. It keeps the grid usable with no backend.
func Fallback() []Product {
	return []Product{
		{SKU: "CF20101001", Price: 78.00, ID: "61220", Description: "Candlefish No. 1 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101002", Price: 78.00, ID: "104526", Description: "Candlefish No. 2 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101003", Price: 78.00, ID: "104527", Description: "Candlefish No. 3 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101004", Price: 78.00, ID: "61234", Description: "Candlefish No. 4 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101005", Price: 78.00, ID: "104528", Description: "Candlefish No. 5 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101006", Price: 78.00, ID: "104529", Description: "Candlefish No. 6 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101007", Price: 78.00, ID: "104530", Description: "Candlefish No. 7 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101008", Price: 78.00, ID: "61206", Description: "Candlefish No. 8 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101009", Price: 78.00, ID: "61196", Description: "Candlefish No. 9 2.5 oz Tin-CASE(12)", CaseQty: 12},
		{SKU: "CF20101010", Price: 78.00, ID: "104531", Description: "Candlefish No. 10 2.5 oz Tin-CASE(12)", CaseQty: 12},
	}
}
