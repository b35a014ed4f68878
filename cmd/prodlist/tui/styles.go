package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Pane and header styles.
var (
	// TitleStyle is used for the screen title and the active list name.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// PaneStyle wraps each content pane.
	PaneStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	// FocusedBorderStyle marks the pane with keyboard focus.
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBlue)

	// BlurredBorderStyle is used for unfocused panes.
	BlurredBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSurface1)
)

// Row styles.
var (
	// CursorStyle highlights the row under the cursor.
	CursorStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// PriceStyle renders prices and totals.
	PriceStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	// BoughtStyle renders items already bought.
	BoughtStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Strikethrough(true)

	// PlaceholderStyle renders dangling items and empty-state messages.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Italic(true)

	// DimStyle renders secondary detail such as shop names and dates.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// ErrorStyle renders failure messages in place of content.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// Overlay styles.
var (
	// OverlayStyle is the border and background for modal dialogs.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Foreground(colorText).
			Padding(1, 2)

	// OverlayTitleStyle is used for the title text in dialogs.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// OverlayButtonActiveStyle is used for the focused button.
	OverlayButtonActiveStyle = lipgloss.NewStyle().
					Foreground(colorBase).
					Background(colorBlue).
					Padding(0, 2)

	// OverlayButtonInactiveStyle is used for the unfocused button.
	OverlayButtonInactiveStyle = lipgloss.NewStyle().
					Foreground(colorText).
					Background(colorSurface1).
					Padding(0, 2)
)
