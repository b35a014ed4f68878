package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OverlayType identifies the kind of modal dialog.
type OverlayType int

const (
	// OverlayConfirm is a Yes/No confirmation.
	OverlayConfirm OverlayType = iota
	// OverlayTextInput is a single-line text input.
	OverlayTextInput
)

// OverlayCloseMsg is emitted when a dialog is dismissed.
type OverlayCloseMsg struct {
	Result    string // text result for input dialogs
	Confirmed bool   // true = OK/Submit, false = Cancel/Esc
}

// Overlay renders a centered modal dialog over the current screen.
type Overlay struct {
	overlayType OverlayType
	title       string
	message     string
	cursor      int // button index: 0=Cancel, 1=OK
	input       textinput.Model
	active      bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		overlayType: OverlayConfirm,
		title:       title,
		message:     message,
		cursor:      1, // default to OK
		active:      true,
	}
}

// NewTextInputOverlay creates a text input dialog.
func NewTextInputOverlay(title, placeholder string) Overlay {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30
	return Overlay{
		overlayType: OverlayTextInput,
		title:       title,
		input:       ti,
		active:      true,
	}
}

// Active returns whether the dialog is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Update handles key messages for the dialog.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	if o.overlayType == OverlayConfirm {
		return o.updateConfirm(msg)
	}
	return o.updateTextInput(msg)
}

func (o Overlay) updateConfirm(msg tea.Msg) (Overlay, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: false}
			}
		case "tab", "left", "right", "h", "l":
			o.cursor = 1 - o.cursor
		case "enter":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: o.cursor == 1}
			}
		}
	}
	return o, nil
}

func (o Overlay) updateTextInput(msg tea.Msg) (Overlay, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: false}
			}
		case "enter":
			value := strings.TrimSpace(o.input.Value())
			if value == "" {
				return o, nil // don't submit empty
			}
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Result: value, Confirmed: true}
			}
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the dialog box.
func (o Overlay) View() string {
	var body string
	switch o.overlayType {
	case OverlayConfirm:
		cancel := OverlayButtonInactiveStyle.Render("Cancel")
		ok := OverlayButtonInactiveStyle.Render("OK")
		if o.cursor == 0 {
			cancel = OverlayButtonActiveStyle.Render("Cancel")
		} else {
			ok = OverlayButtonActiveStyle.Render("OK")
		}
		body = o.message + "\n\n" + cancel + "  " + ok
	case OverlayTextInput:
		body = o.input.View()
	}

	content := OverlayTitleStyle.Render(o.title) + "\n\n" + body
	return OverlayStyle.Render(content)
}

// Centered places the dialog in the middle of a width×height viewport.
func (o Overlay) Centered(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, o.View())
}
