package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closeMsg(t *testing.T, cmd tea.Cmd) OverlayCloseMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(OverlayCloseMsg)
	require.True(t, ok)
	return msg
}

func TestConfirmOverlay_EnterDefaultsToOK(t *testing.T) {
	o := NewConfirmOverlay("Delete list", "Delete?")
	require.True(t, o.Active())

	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, o.Active())
	assert.True(t, closeMsg(t, cmd).Confirmed)
}

func TestConfirmOverlay_TabSwitchesToCancel(t *testing.T) {
	o := NewConfirmOverlay("Delete list", "Delete?")

	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyTab})
	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, closeMsg(t, cmd).Confirmed)
}

func TestConfirmOverlay_EscCancels(t *testing.T) {
	o := NewConfirmOverlay("Delete list", "Delete?")

	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEscape})

	assert.False(t, o.Active())
	assert.False(t, closeMsg(t, cmd).Confirmed)
}

func TestTextInputOverlay_SubmitReturnsTrimmedValue(t *testing.T) {
	o := NewTextInputOverlay("New list name", "name")
	for _, r := range " groceries " {
		o, _ = o.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := closeMsg(t, cmd)
	assert.True(t, msg.Confirmed)
	assert.Equal(t, "groceries", msg.Result)
}

func TestTextInputOverlay_EmptyValueDoesNotSubmit(t *testing.T) {
	o := NewTextInputOverlay("New list name", "name")

	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, o.Active(), "dialog stays open on empty submit")
}
