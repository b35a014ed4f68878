package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/akorchak/prodlist/internal/api"
	"github.com/akorchak/prodlist/internal/catalog"
)

func newTestController() (*Controller, *catalog.Cache) {
	cache := catalog.NewCache()
	cache.Set([]api.Product{
		{ID: 1, Name: "Milk 1L", Price: decimal.RequireFromString("0.99")},
		{ID: 2, Name: "Bread", Price: decimal.RequireFromString("1.10")},
	})
	return NewController(cache), cache
}

func TestController_StartsInOverview(t *testing.T) {
	ctl, _ := newTestController()

	assert.Equal(t, StateOverview, ctl.State())
	assert.Zero(t, ctl.ActiveList())
}

func TestController_OpenClearsQueryAndGoesActive(t *testing.T) {
	ctl, _ := newTestController()
	ctl.SetQuery("milk")

	gen := ctl.Open(7)

	assert.Equal(t, StateActive, ctl.State())
	assert.Equal(t, int64(7), ctl.ActiveList())
	assert.Empty(t, ctl.Query())
	assert.True(t, ctl.Current(gen))
	// The picker view is unfiltered right after open.
	assert.Len(t, ctl.Visible(), 2)
}

func TestController_CloseReturnsToOverview(t *testing.T) {
	ctl, _ := newTestController()
	gen := ctl.Open(7)

	ctl.Close()

	assert.Equal(t, StateOverview, ctl.State())
	assert.Zero(t, ctl.ActiveList())
	// The open's detail fetch is now stale.
	assert.False(t, ctl.Current(gen))
}

func TestController_RefreshInvalidatesOlderTokens(t *testing.T) {
	ctl, _ := newTestController()
	first := ctl.Open(7)
	second := ctl.Refresh()

	assert.False(t, ctl.Current(first))
	assert.True(t, ctl.Current(second))
}

func TestController_SecondOpenInvalidatesFirst(t *testing.T) {
	ctl, _ := newTestController()
	first := ctl.Open(7)
	second := ctl.Open(8)

	// Two overlapping opens: only the later completion may render.
	assert.False(t, ctl.Current(first))
	assert.True(t, ctl.Current(second))
	assert.Equal(t, int64(8), ctl.ActiveList())
}

func TestController_VisibleFollowsQuery(t *testing.T) {
	ctl, _ := newTestController()
	ctl.Open(7)

	ctl.SetQuery("milk")

	visible := ctl.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, "Milk 1L", visible[0].Name)
}

func TestController_CatalogReloadKeepsQuery(t *testing.T) {
	ctl, cache := newTestController()
	ctl.Open(7)
	ctl.SetQuery("milk")

	// A wholesale catalog replace while Active: the picker re-runs with the
	// current query text, not a reset.
	cache.Set([]api.Product{
		{ID: 1, Name: "Milk 1L", Price: decimal.RequireFromString("1.05")},
		{ID: 3, Name: "Oat Milk", Price: decimal.RequireFromString("2.49")},
		{ID: 2, Name: "Bread", Price: decimal.RequireFromString("1.10")},
	})

	assert.Equal(t, "milk", ctl.Query())
	visible := ctl.Visible()
	assert.Len(t, visible, 2)
	assert.Equal(t, "Milk 1L", visible[0].Name) // cheapest first
}
