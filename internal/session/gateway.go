package session

import (
	"context"

	"github.com/akorchak/prodlist/internal/api"
)

// ListService is the remote surface the gateway mutates through. *api.Client
// satisfies it.
type ListService interface {
	List(ctx context.Context, id int64) (*api.ShoppingList, error)
	AddItem(ctx context.Context, listID, productID int64, quantity int) (*api.ListItem, error)
	ToggleItem(ctx context.Context, itemID int64, bought bool) error
	DeleteItem(ctx context.Context, itemID int64) error
	DeleteList(ctx context.Context, listID int64) error
}

// Gateway issues list mutations fire-and-refresh style: the mutation is sent,
// and on success the list's full detail is re-fetched so the caller renders
// authoritative server state rather than a local patch. On failure the
// mutation is abandoned with no refresh — the displayed state stays whatever
// it was, which may be stale if the server half-applied the change before the
// transport gave up. That risk is accepted: without a response there is no
// way to know the remote outcome.
type Gateway struct {
	svc ListService
}

// NewGateway creates a gateway over the given service.
func NewGateway(svc ListService) *Gateway {
	return &Gateway{svc: svc}
}

// AddItem adds one unit of a product and returns the refreshed list. The
// quantity is always 1; the client never de-duplicates — the server folds a
// repeated (list, product) pair by incrementing the existing item's quantity.
func (g *Gateway) AddItem(ctx context.Context, listID, productID int64) (*api.ShoppingList, error) {
	if _, err := g.svc.AddItem(ctx, listID, productID, 1); err != nil {
		return nil, err
	}
	return g.svc.List(ctx, listID)
}

// ToggleBought flips an item's bought flag and returns the refreshed list.
func (g *Gateway) ToggleBought(ctx context.Context, listID, itemID int64, bought bool) (*api.ShoppingList, error) {
	if err := g.svc.ToggleItem(ctx, itemID, bought); err != nil {
		return nil, err
	}
	return g.svc.List(ctx, listID)
}

// RemoveItem deletes an item and returns the refreshed list.
func (g *Gateway) RemoveItem(ctx context.Context, listID, itemID int64) (*api.ShoppingList, error) {
	if err := g.svc.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}
	return g.svc.List(ctx, listID)
}

// DeleteList removes the whole list. There is nothing to refresh afterwards;
// the session returns to Overview and reloads the top level instead.
func (g *Gateway) DeleteList(ctx context.Context, listID int64) error {
	return g.svc.DeleteList(ctx, listID)
}
