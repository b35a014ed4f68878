package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorchak/prodlist/internal/api"
)

func demoList() *api.ShoppingList {
	return &api.ShoppingList{
		ID:   7,
		Name: "Weekend",
		Items: []api.ListItem{
			{ID: 1, Quantity: 2, Product: &api.Product{Name: "Milk 1L", Price: price("1.50")}},
			{ID: 2, Quantity: 1, IsBought: true, Product: &api.Product{Name: "Bread", Price: price("3.00")}},
			{ID: 3, Quantity: 4, Product: nil}, // dangling
		},
	}
}

func TestItemsPane_ViewShowsRowsAndTotal(t *testing.T) {
	ip := NewItemsPane("€")
	ip.SetList(demoList())

	view := ip.View()
	assert.Contains(t, view, "Weekend")
	assert.Contains(t, view, "Milk 1L")
	assert.Contains(t, view, "×2")
	assert.Contains(t, view, "[x]")
	// Bought and dangling items still count rows, but dangling contributes
	// nothing: 2×1.50 + 1×3.00 = 6.00.
	assert.Contains(t, view, "6.00 €")
}

func TestItemsPane_DanglingItemRendersPlaceholder(t *testing.T) {
	ip := NewItemsPane("€")
	ip.SetList(demoList())

	assert.Contains(t, ip.View(), "(product removed)")
}

func TestItemsPane_EmptyListMessageAndZeroTotal(t *testing.T) {
	ip := NewItemsPane("€")
	ip.SetList(&api.ShoppingList{ID: 7, Name: "Weekend"})

	view := ip.View()
	assert.Contains(t, view, "List is empty")
	assert.Contains(t, view, "0.00 €")
	assert.Nil(t, ip.Selected())
}

func TestItemsPane_CursorMovementAndSelection(t *testing.T) {
	ip := NewItemsPane("€")
	ip.SetFocused(true)
	ip.SetList(demoList())

	require.NotNil(t, ip.Selected())
	assert.Equal(t, int64(1), ip.Selected().ID)

	ip, _ = ip.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, int64(2), ip.Selected().ID)

	ip, _ = ip.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, int64(1), ip.Selected().ID)
}

func TestItemsPane_SetListClampsCursorAfterShrink(t *testing.T) {
	ip := NewItemsPane("€")
	ip.SetList(demoList())
	ip, _ = ip.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	ip, _ = ip.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	// The refresh after a remove comes back with fewer items.
	shrunk := demoList()
	shrunk.Items = shrunk.Items[:1]
	ip.SetList(shrunk)

	require.NotNil(t, ip.Selected())
	assert.Equal(t, int64(1), ip.Selected().ID)
}

func TestItemsPane_ClearEmptiesPane(t *testing.T) {
	ip := NewItemsPane("€")
	ip.SetList(demoList())

	ip.Clear()

	assert.Nil(t, ip.Selected())
	assert.Empty(t, ip.title)
}
