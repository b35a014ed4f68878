package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// StatusBar renders the bottom row: context on the left, key hints on the
// right, and — when set — an error or notice line above.
type StatusBar struct {
	context string
	notice  string
	errText string
	width   int
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetContext sets the left-hand context text.
func (s *StatusBar) SetContext(text string) {
	s.context = text
	s.notice = ""
	s.errText = ""
}

// SetNotice shows a transient informational message.
func (s *StatusBar) SetNotice(text string) {
	s.notice = text
	s.errText = ""
}

// SetError shows a failure message. It stays until the next context change.
func (s *StatusBar) SetError(text string) {
	s.errText = text
	s.notice = ""
}

// View renders the status bar, one or two lines.
func (s StatusBar) View() string {
	shortcuts := []string{
		StatusBarKeyStyle.Render("enter") + ": open/add",
		StatusBarKeyStyle.Render("space") + ": bought",
		StatusBarKeyStyle.Render("tab") + ": pane",
		StatusBarKeyStyle.Render("esc") + ": back",
	}
	rightPart := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(s.context)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}
	bar := StatusBarStyle.Width(s.width).Render(s.context + strings.Repeat(" ", gap) + rightPart)

	switch {
	case s.errText != "":
		wrapped := wordwrap.String("Error: "+s.errText, max(s.width-2, 20))
		return ErrorStyle.Render(wrapped) + "\n" + bar
	case s.notice != "":
		wrapped := wordwrap.String(s.notice, max(s.width-2, 20))
		return DimStyle.Render(wrapped) + "\n" + bar
	default:
		return bar
	}
}
