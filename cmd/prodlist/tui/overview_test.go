package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorchak/prodlist/internal/api"
)

func TestOverview_EmptyStateMessage(t *testing.T) {
	o := NewOverview()
	o.SetLists(nil)

	assert.Nil(t, o.Selected())
	assert.Contains(t, o.View(), "No lists yet")
}

func TestOverview_CursorAndSelection(t *testing.T) {
	o := NewOverview()
	o.SetLists([]api.ShoppingList{
		{ID: 7, Name: "Weekend"},
		{ID: 8, Name: "Party"},
	})

	require.NotNil(t, o.Selected())
	assert.Equal(t, "Weekend", o.Selected().Name)

	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, "Party", o.Selected().Name)

	// Clamped at the last entry.
	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Party", o.Selected().Name)
}

func TestOverview_SetListsClampsCursorAfterDelete(t *testing.T) {
	o := NewOverview()
	o.SetLists([]api.ShoppingList{
		{ID: 7, Name: "Weekend"},
		{ID: 8, Name: "Party"},
	})
	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})

	o.SetLists([]api.ShoppingList{{ID: 7, Name: "Weekend"}})

	require.NotNil(t, o.Selected())
	assert.Equal(t, "Weekend", o.Selected().Name)
}
