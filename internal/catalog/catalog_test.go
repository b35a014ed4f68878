package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/akorchak/prodlist/internal/api"
)

func product(id int64, name string, price string) api.Product {
	return api.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func names(products []api.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestFilterAndSort_EmptyQueryReturnsAllByPrice(t *testing.T) {
	products := []api.Product{
		product(1, "Cheese", "4.20"),
		product(2, "Bread", "1.10"),
		product(3, "Butter", "2.50"),
	}

	result := FilterAndSort(products, "")

	assert.Equal(t, []string{"Bread", "Butter", "Cheese"}, names(result))
}

func TestFilterAndSort_NoMatchReturnsEmpty(t *testing.T) {
	products := []api.Product{product(1, "Milk 1L", "0.99")}

	result := FilterAndSort(products, "xyz-no-match")

	assert.Empty(t, result)
}

func TestFilterAndSort_CaseInsensitiveSubstring(t *testing.T) {
	products := []api.Product{product(1, "Milk 1L", "0.99")}

	for _, query := range []string{"milk", "MILK", "1l"} {
		result := FilterAndSort(products, query)
		assert.Len(t, result, 1, "query %q should match", query)
	}
}

func TestFilterAndSort_TrimsQuery(t *testing.T) {
	products := []api.Product{product(1, "Milk 1L", "0.99")}

	result := FilterAndSort(products, "  milk  ")

	assert.Len(t, result, 1)
}

func TestFilterAndSort_StableOnEqualPrices(t *testing.T) {
	products := []api.Product{
		product(1, "Eggs A", "2.00"),
		product(2, "Eggs B", "2.00"),
		product(3, "Eggs C", "2.00"),
	}

	result := FilterAndSort(products, "eggs")

	assert.Equal(t, []string{"Eggs A", "Eggs B", "Eggs C"}, names(result))
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	products := []api.Product{
		product(1, "Cheese", "4.20"),
		product(2, "Bread", "1.10"),
	}

	FilterAndSort(products, "")

	assert.Equal(t, "Cheese", products[0].Name)
}

func TestCache_SetReplacesWholesale(t *testing.T) {
	cache := NewCache()
	cache.Set([]api.Product{product(1, "Old", "1.00")})

	cache.Set([]api.Product{product(2, "New A", "2.00"), product(3, "New B", "3.00")})

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, "New A", cache.All()[0].Name)
}

func TestCache_OldSnapshotSurvivesReplace(t *testing.T) {
	cache := NewCache()
	cache.Set([]api.Product{product(1, "Old", "1.00")})
	snapshot := cache.All()

	cache.Set(nil)

	// The reader keeps a consistent view of the snapshot it took; an empty
	// catalog is a valid new state.
	assert.Len(t, snapshot, 1)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_EmptyIsValid(t *testing.T) {
	cache := NewCache()

	assert.Empty(t, cache.All())
	assert.Empty(t, FilterAndSort(cache.All(), "anything"))
}
