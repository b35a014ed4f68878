package tui

import "github.com/akorchak/prodlist/internal/api"

// FocusZone identifies which pane currently has keyboard focus while a list
// is open.
type FocusZone int

const (
	// FocusPicker is the left pane: search input plus filtered products.
	FocusPicker FocusZone = iota
	// FocusItems is the right pane: the open list's items.
	FocusItems
)

// --- Remote completion messages ---
//
// All remote work runs as tea.Cmds; these messages deliver the results back
// onto the single update loop. Messages tied to the active list carry the
// generation token of the request that produced them — the root model drops
// any completion whose token is no longer current.

// CatalogLoadedMsg delivers a wholesale catalog reload.
type CatalogLoadedMsg struct {
	Products []api.Product
	Err      error
}

// OverviewLoadedMsg delivers the list overview (lists without items).
type OverviewLoadedMsg struct {
	Lists []api.ShoppingList
	Err   error
}

// ListDetailMsg delivers the active list's full detail. Err is set when the
// fetch (or the refetch after a successful mutation) failed; the error is
// rendered in place of item content without leaving the Active state.
type ListDetailMsg struct {
	Gen  uint64
	List *api.ShoppingList
	Err  error
}

// MutationFailedMsg reports an abandoned mutation. No refresh was attempted;
// the previously displayed state stands.
type MutationFailedMsg struct {
	Err error
}

// ListCreatedMsg reports the outcome of creating a list from the overview.
type ListCreatedMsg struct {
	Err error
}

// ListDeletedMsg reports the outcome of deleting a list.
type ListDeletedMsg struct {
	Err error
}

// SendDoneMsg reports the outcome of forwarding the active list to the
// notification relay.
type SendDoneMsg struct {
	Err error
}
