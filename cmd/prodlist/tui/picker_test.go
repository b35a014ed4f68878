package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorchak/prodlist/internal/api"
)

func pickerProducts() []api.Product {
	return []api.Product{
		{ID: 1, Name: "Milk 1L", Price: price("0.99")},
		{ID: 2, Name: "Bread", Price: price("1.10")},
		{ID: 3, Name: "Cheese", Price: price("4.20")},
	}
}

func TestPicker_SelectedFollowsCursor(t *testing.T) {
	p := NewPicker("€")
	p.SetFocused(true)
	p.SetResults(pickerProducts())

	require.NotNil(t, p.Selected())
	assert.Equal(t, "Milk 1L", p.Selected().Name)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "Bread", p.Selected().Name)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "Milk 1L", p.Selected().Name)
}

func TestPicker_CursorClampsAtEdges(t *testing.T) {
	p := NewPicker("€")
	p.SetResults(pickerProducts())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "Milk 1L", p.Selected().Name)

	for i := 0; i < 10; i++ {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, "Cheese", p.Selected().Name)
}

func TestPicker_SetResultsClampsCursor(t *testing.T) {
	p := NewPicker("€")
	p.SetResults(pickerProducts())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})

	// The filter narrows to one result; the cursor must not point past it.
	p.SetResults(pickerProducts()[:1])
	require.NotNil(t, p.Selected())
	assert.Equal(t, "Milk 1L", p.Selected().Name)
}

func TestPicker_SelectedNilWhenEmpty(t *testing.T) {
	p := NewPicker("€")
	p.SetResults(nil)

	assert.Nil(t, p.Selected())
	assert.Contains(t, p.View(), "no products match")
}

func TestPicker_ResetClearsQueryAndCursor(t *testing.T) {
	p := NewPicker("€")
	p.SetFocused(true)
	p.SetResults(pickerProducts())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "m", p.Query())

	p.Reset()

	assert.Empty(t, p.Query())
	assert.Equal(t, "Milk 1L", p.Selected().Name)
}

func TestPicker_ViewShowsPricesAndOverflow(t *testing.T) {
	p := NewPicker("€")
	p.SetSize(40, 4) // room for two result rows
	p.SetResults(pickerProducts())

	view := p.View()
	assert.Contains(t, view, "0.99 €")
	assert.Contains(t, view, "… 1 more")
}
