package catalog

import "testing"

func TestFallback_UsableSeedCatalog(t *testing.T) {
	products := Fallback()
	if len(products) == 0 {
		t.Fatalf("Fallback returned no products")
	}
	seen := make(map[string]bool)
	for _, p := range products {
		if p.SKU == "" {
			t.Fatalf("fallback product with empty SKU: %#v", p)
		}
		if seen[p.SKU] {
			t.Fatalf("duplicate fallback SKU %q", p.SKU)
		}
		seen[p.SKU] = true
		if p.Price < 0 {
			t.Fatalf("fallback product %q has negative price", p.SKU)
		}
		if p.CaseQty < 1 {
			t.Fatalf("fallback product %q has case qty %d, want >= 1", p.SKU, p.CaseQty)
		}
	}
}

func TestNormalize_DefaultsCaseQty(t *testing.T) {
	products := Normalize([]Product{
		{SKU: "A", CaseQty: 0},
		{SKU: "B", CaseQty: -3},
		{SKU: "C", CaseQty: 6},
	})
	if products[0].CaseQty != 1 || products[1].CaseQty != 1 {
		t.Fatalf("Normalize did not default case qty: %#v", products)
	}
	if products[2].CaseQty != 6 {
		t.Fatalf("Normalize changed a valid case qty: %#v", products[2])
	}
}
