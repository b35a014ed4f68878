package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/akorchak/prodlist/internal/basket"
	"github.com/akorchak/prodlist/internal/catalog"
	"github.com/akorchak/prodlist/internal/session"
)

// overlayContext tracks what the currently-active dialog was opened for.
type overlayContext int

const (
	overlayNone       overlayContext = iota
	overlayNewList                   // text input for a new list name
	overlayDeleteList                // delete list confirmation
)

// Model is the root bubbletea model for the shopping session. It owns the
// session controller (the Overview/Active state machine), the catalog cache,
// and the panes, and serializes every remote completion onto the update loop.
type Model struct {
	svc   Service
	gw    *session.Gateway
	ctl   *session.Controller
	cache *catalog.Cache

	currency string

	overview  Overview
	picker    Picker
	items     ItemsPane
	statusBar StatusBar
	overlay   Overlay

	overlayCtx    overlayContext
	pendingDelete int64 // list id awaiting delete confirmation

	// detailErr is rendered in place of item content when the active list's
	// detail failed to load. The session stays Active — degraded, not
	// reverted.
	detailErr string

	focus         FocusZone
	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool
}

// NewModel creates the session model.
func NewModel(svc Service, currency string) Model {
	cache := catalog.NewCache()
	m := Model{
		svc:       svc,
		gw:        session.NewGateway(svc),
		ctl:       session.NewController(cache),
		cache:     cache,
		currency:  currency,
		overview:  NewOverview(),
		picker:    NewPicker(currency),
		items:     NewItemsPane(currency),
		statusBar: NewStatusBar(),
	}
	m.statusBar.SetContext("loading…")
	return m
}

// Init satisfies tea.Model. Kicks off the initial top-level load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(LoadCatalog(m.svc), LoadOverview(m.svc))
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case OverviewLoadedMsg:
		if msg.Err != nil {
			m.statusBar.SetError(msg.Err.Error())
			return m, nil
		}
		m.overview.SetLists(msg.Lists)
		if m.ctl.State() == session.StateOverview {
			m.statusBar.SetContext(fmt.Sprintf("%d lists · %d products", len(msg.Lists), m.cache.Len()))
		}
		return m, nil

	case ListDetailMsg:
		return m.handleListDetail(msg)

	case MutationFailedMsg:
		// Abandoned mutation: no refresh, prior state stands.
		m.statusBar.SetError(msg.Err.Error())
		return m, nil

	case ListCreatedMsg:
		if msg.Err != nil {
			m.statusBar.SetError(msg.Err.Error())
			return m, nil
		}
		return m, LoadOverview(m.svc)

	case ListDeletedMsg:
		if msg.Err != nil {
			m.statusBar.SetError(msg.Err.Error())
			return m, nil
		}
		return m, tea.Batch(LoadCatalog(m.svc), LoadOverview(m.svc))

	case SendDoneMsg:
		if msg.Err != nil {
			m.statusBar.SetError(msg.Err.Error())
		} else {
			m.statusBar.SetNotice("List sent to telegram recipients.")
		}
		return m, nil
	}

	// When a dialog is active, it gets every remaining message.
	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}
	if closeMsg, ok := msg.(OverlayCloseMsg); ok {
		return m.handleOverlayClose(closeMsg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.ctl.State() == session.StateOverview {
			return m.updateOverviewKeys(key)
		}
		return m.updateActiveKeys(key)
	}

	return m, nil
}

// handleCatalogLoaded applies a wholesale catalog replace. While a list is
// open this also re-runs the picker with the current query — not a reset —
// and refetches the list detail, both as idempotent refreshes.
func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.statusBar.SetError(msg.Err.Error())
		return m, nil
	}
	m.cache.Set(msg.Products)
	if m.ctl.State() == session.StateActive {
		m.picker.SetResults(m.ctl.Visible())
		return m, FetchDetail(m.svc, m.ctl.ActiveList(), m.ctl.Refresh())
	}
	m.statusBar.SetContext(fmt.Sprintf("%d lists · %d products", len(m.overview.lists), m.cache.Len()))
	return m, nil
}

// handleListDetail renders freshly fetched detail, dropping completions whose
// generation token is stale — a response for a list the user has since
// navigated away from, or one outrun by a newer request.
func (m Model) handleListDetail(msg ListDetailMsg) (tea.Model, tea.Cmd) {
	if !m.ctl.Current(msg.Gen) {
		return m, nil
	}
	if msg.Err != nil {
		m.detailErr = msg.Err.Error()
		return m, nil
	}
	m.detailErr = ""
	m.items.SetList(msg.List)
	total := basket.Format(basket.Total(msg.List.Items), m.currency)
	m.statusBar.SetContext(msg.List.Name + " · " + total)
	return m, nil
}

func (m Model) updateOverviewKeys(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		list := m.overview.Selected()
		if list == nil {
			return m, nil
		}
		return m.openList(list.ID)
	case "n":
		m.overlay = NewTextInputOverlay("New list name", "e.g. weekend groceries")
		m.overlayCtx = overlayNewList
		return m, nil
	case "d":
		list := m.overview.Selected()
		if list == nil {
			return m, nil
		}
		m.pendingDelete = list.ID
		m.overlay = NewConfirmOverlay("Delete list", fmt.Sprintf("Delete list %q?", list.Name))
		m.overlayCtx = overlayDeleteList
		return m, nil
	case "r":
		return m, tea.Batch(LoadCatalog(m.svc), LoadOverview(m.svc))
	}

	var cmd tea.Cmd
	m.overview, cmd = m.overview.Update(key)
	return m, cmd
}

func (m Model) updateActiveKeys(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		// Esc clears the filter first; a second Esc closes the list.
		if m.focus == FocusPicker && m.picker.Query() != "" {
			m.picker.Reset()
			m.ctl.SetQuery("")
			m.picker.SetResults(m.ctl.Visible())
			return m, nil
		}
		return m.closeList()
	case "tab":
		if m.focus == FocusPicker {
			m.focus = FocusItems
		} else {
			m.focus = FocusPicker
		}
		m.picker.SetFocused(m.focus == FocusPicker)
		m.items.SetFocused(m.focus == FocusItems)
		return m, nil
	case "enter":
		if m.focus == FocusPicker {
			product := m.picker.Selected()
			if product == nil {
				return m, nil
			}
			// Always one unit; the server folds duplicates.
			return m, AddItem(m.gw, m.ctl.ActiveList(), product.ID, m.ctl.Refresh())
		}
		return m, nil
	}

	if m.focus == FocusItems {
		switch key.String() {
		case " ", "space":
			item := m.items.Selected()
			if item == nil {
				return m, nil
			}
			return m, ToggleBought(m.gw, m.ctl.ActiveList(), item.ID, !item.IsBought, m.ctl.Refresh())
		case "x":
			item := m.items.Selected()
			if item == nil {
				return m, nil
			}
			return m, RemoveItem(m.gw, m.ctl.ActiveList(), item.ID, m.ctl.Refresh())
		case "t":
			return m, SendList(m.svc, m.ctl.ActiveList())
		case "r":
			return m, tea.Batch(LoadCatalog(m.svc), LoadOverview(m.svc))
		}
		var cmd tea.Cmd
		m.items, cmd = m.items.Update(key)
		return m, cmd
	}

	// Picker focus: everything else is typing or cursor movement.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(key)
	if m.picker.Query() != m.ctl.Query() {
		m.ctl.SetQuery(m.picker.Query())
		m.picker.SetResults(m.ctl.Visible())
	}
	return m, cmd
}

// openList transitions Overview → Active. The search query is cleared and
// the full unfiltered picker renders immediately; the detail arrives later
// under a fresh generation token.
func (m Model) openList(listID int64) (tea.Model, tea.Cmd) {
	gen := m.ctl.Open(listID)
	m.picker.Reset()
	m.picker.SetResults(m.ctl.Visible())
	m.items.Clear()
	m.detailErr = ""
	m.focus = FocusPicker
	m.picker.SetFocused(true)
	m.items.SetFocused(false)
	m.statusBar.SetContext("loading list…")
	return m, FetchDetail(m.svc, listID, gen)
}

// closeList transitions Active → Overview and triggers the full top-level
// reload of products and lists.
func (m Model) closeList() (tea.Model, tea.Cmd) {
	m.ctl.Close()
	m.items.Clear()
	m.detailErr = ""
	m.picker.SetFocused(false)
	m.statusBar.SetContext("loading…")
	return m, tea.Batch(LoadCatalog(m.svc), LoadOverview(m.svc))
}

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)
	return m, cmd
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	ctx := m.overlayCtx
	m.overlayCtx = overlayNone
	if !msg.Confirmed {
		return m, nil
	}
	switch ctx {
	case overlayNewList:
		return m, CreateList(m.svc, msg.Result)
	case overlayDeleteList:
		return m, DeleteList(m.gw, m.pendingDelete)
	}
	return m, nil
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.overlay.Active() {
		return m.overlay.Centered(m.width, m.height)
	}

	statusView := m.statusBar.View()
	statusHeight := lipgloss.Height(statusView)
	contentHeight := m.height - statusHeight

	var content string
	if m.ctl.State() == session.StateOverview {
		content = PaneStyle.Render(m.overview.View())
	} else {
		content = m.activeView(contentHeight)
	}

	content = lipgloss.PlaceVertical(contentHeight, lipgloss.Top, content)
	return content + "\n" + statusView
}

// activeView renders the two panes of an open list side by side.
func (m Model) activeView(height int) string {
	leftWidth := m.width * 2 / 5
	if leftWidth < 24 {
		leftWidth = 24
	}
	rightWidth := m.width - leftWidth - 6 // borders and padding
	if rightWidth < 20 {
		rightWidth = 20
	}
	paneHeight := height - 2 // borders

	leftBorder := BlurredBorderStyle
	rightBorder := BlurredBorderStyle
	if m.focus == FocusPicker {
		leftBorder = FocusedBorderStyle
	} else {
		rightBorder = FocusedBorderStyle
	}

	left := leftBorder.Width(leftWidth).Height(paneHeight).Render(PaneStyle.Render(m.picker.View()))

	var rightContent string
	if m.detailErr != "" {
		rightContent = ErrorStyle.Render(wordwrap.String("Error: "+m.detailErr, rightWidth-2))
	} else {
		rightContent = m.items.View()
	}
	right := rightBorder.Width(rightWidth).Height(paneHeight).Render(PaneStyle.Render(rightContent))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// distributeSize hands terminal dimensions to the panes.
func (m *Model) distributeSize() {
	contentHeight := m.height - 4 // status bar and borders
	if contentHeight < 4 {
		contentHeight = 4
	}
	leftWidth := m.width * 2 / 5
	if leftWidth < 24 {
		leftWidth = 24
	}
	m.overview.SetSize(m.width-2, contentHeight)
	m.picker.SetSize(leftWidth-2, contentHeight)
	m.items.SetSize(m.width-leftWidth-8, contentHeight)
	m.statusBar.SetWidth(m.width)
}
