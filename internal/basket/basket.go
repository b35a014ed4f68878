// Package basket computes the derived numbers of an open shopping list.
package basket

import (
	"sort"

	"github.com/akorchak/prodlist/internal/api"
	"github.com/shopspring/decimal"
)

// Total sums quantity × price over items whose product reference resolved.
// Dangling items (deleted product) contribute zero. The bought flag does not
// affect the total, and neither does item order.
func Total(items []api.ListItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		total = total.Add(item.Product.Price.Mul(qty))
	}
	return total
}

// Subtotal is one item's contribution to the total.
func Subtotal(item api.ListItem) decimal.Decimal {
	if item.Product == nil {
		return decimal.Zero
	}
	return item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Format renders an amount as a fixed two-decimal currency string,
// e.g. "6.00 €".
func Format(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}

// SortHistory returns a copy of the price history ordered newest first.
func SortHistory(entries []api.PriceHistoryEntry) []api.PriceHistoryEntry {
	sorted := make([]api.PriceHistoryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	return sorted
}
