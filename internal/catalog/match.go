package catalog

import "strings"

// DefaultMatchLimit caps how many candidates a lookup surfaces at once.
const DefaultMatchLimit = 8

// minQueryLen is a noise-reduction threshold, not a technical limit: one
// character matches too much of any real catalog to be useful.
const minQueryLen = 2

// Match returns the products whose SKU or description contains query,
// case-insensitively, preserving catalog order and truncating to limit.
// It is a pure function and safe to call on every keystroke.
func Match(query string, products []Product, limit int) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < minQueryLen {
		return nil
	}
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	var matches []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.SKU), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matches = append(matches, p)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// Find resolves entered text to a catalog product for enrichment: an exact
// case-insensitive SKU match wins, otherwise a description that contains the
// text. The first catalog hit is returned.
func Find(skuText string, products []Product) (Product, bool) {
	q := strings.ToLower(strings.TrimSpace(skuText))
	if q == "" {
		return Product{}, false
	}
	for _, p := range products {
		if strings.ToLower(p.SKU) == q ||
			strings.Contains(strings.ToLower(p.Description), q) {
			return p, true
		}
	}
	return Product{}, false
}
