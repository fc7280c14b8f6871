// Package catalog holds the in-memory product catalog: the Product type, the
// built-in fallback seed list, and the pure lookup functions used for
// autocomplete matching and item enrichment.
package catalog
