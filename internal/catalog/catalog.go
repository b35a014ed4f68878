// Package catalog holds the client-side snapshot of the product catalog and
// the search view derived from it.
package catalog

import (
	"sort"
	"strings"

	"github.com/akorchak/prodlist/internal/api"
)

// Cache is an in-memory copy of the server's product catalog. It is replaced
// wholesale on every reload; there is no merging or diffing. A caller holding
// a slice from a previous All call keeps seeing that snapshot — anything
// derived from it (a filtered picker view, say) must be recomputed after Set.
type Cache struct {
	products []api.Product
}

// NewCache returns an empty cache. An empty catalog is a valid state.
func NewCache() *Cache {
	return &Cache{}
}

// Set replaces the entire cached catalog.
func (c *Cache) Set(products []api.Product) {
	c.products = products
}

// All returns the current snapshot. Callers must treat it as read-only.
func (c *Cache) All() []api.Product {
	return c.products
}

// Len reports the number of cached products.
func (c *Cache) Len() int {
	return len(c.products)
}

// FilterAndSort derives the picker view: products whose name contains the
// normalized query as a case-insensitive substring, cheapest first. An empty
// query matches everything. The sort is stable, so equal prices keep catalog
// order. Recomputed in full on every call — the catalog is small enough that
// incremental filtering isn't worth the bookkeeping.
func FilterAndSort(products []api.Product, query string) []api.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]api.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Price.LessThan(filtered[j].Price)
	})
	return filtered
}
