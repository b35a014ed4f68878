// Package session holds the shopping-list session: the two-state machine
// deciding which list is open, the live search query, and the mutation
// gateway that keeps the displayed list consistent with the server.
package session

import (
	"github.com/akorchak/prodlist/internal/api"
	"github.com/akorchak/prodlist/internal/catalog"
)

// State is the session's view state.
type State int

const (
	// StateOverview shows all lists; no list is open.
	StateOverview State = iota
	// StateActive has one list open for editing.
	StateActive
)

// Controller is the explicit session context: which list is open, the current
// picker query, and the request generation counter. All methods are meant to
// be called from a single goroutine (the UI update loop); remote completions
// must be checked against Current before they are rendered.
type Controller struct {
	state      State
	activeList int64
	query      string
	gen        uint64
	cache      *catalog.Cache
}

// NewController creates a controller in the Overview state backed by the
// given catalog cache.
func NewController(cache *catalog.Cache) *Controller {
	return &Controller{cache: cache}
}

// State returns the current view state.
func (c *Controller) State() State {
	return c.state
}

// ActiveList returns the open list's id, or zero in Overview.
func (c *Controller) ActiveList() int64 {
	return c.activeList
}

// Query returns the current picker query text.
func (c *Controller) Query() string {
	return c.query
}

// Open transitions Overview → Active(listID). The query is cleared so the
// picker starts unfiltered, and a fresh generation token is returned for the
// detail fetch that must follow.
func (c *Controller) Open(listID int64) uint64 {
	c.state = StateActive
	c.activeList = listID
	c.query = ""
	return c.bump()
}

// Close transitions back to Overview and invalidates all in-flight detail
// fetches. The caller is expected to trigger a full top-level reload.
func (c *Controller) Close() {
	c.state = StateOverview
	c.activeList = 0
	c.query = ""
	c.bump()
}

// SetQuery updates the picker query text. The catalog reload path does not
// call this — a reload re-runs the picker with whatever query is current.
func (c *Controller) SetQuery(query string) {
	c.query = query
}

// Refresh returns a fresh generation token for an idempotent re-fetch of the
// active list (after a mutation or a catalog reload). Older tokens become
// stale.
func (c *Controller) Refresh() uint64 {
	return c.bump()
}

// Current reports whether a completion carrying the given token is still the
// latest issued request. Stale completions must be dropped, not rendered.
func (c *Controller) Current(gen uint64) bool {
	return gen == c.gen
}

// Visible computes the picker view for the current query against the full
// catalog cache.
func (c *Controller) Visible() []api.Product {
	return catalog.FilterAndSort(c.cache.All(), c.query)
}

func (c *Controller) bump() uint64 {
	c.gen++
	return c.gen
}
