package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akorchak/prodlist/internal/api"
	"github.com/akorchak/prodlist/internal/session"
)

// Service is the remote surface the session TUI consumes. *api.Client
// satisfies it; tests substitute a fake.
type Service interface {
	session.ListService
	Products(ctx context.Context) ([]api.Product, error)
	Lists(ctx context.Context) ([]api.ShoppingList, error)
	CreateList(ctx context.Context, name string) (*api.ShoppingList, error)
	SendList(ctx context.Context, listID int64) error
}

// LoadCatalog fetches the full product catalog.
func LoadCatalog(svc Service) tea.Cmd {
	return func() tea.Msg {
		products, err := svc.Products(context.Background())
		return CatalogLoadedMsg{Products: products, Err: err}
	}
}

// LoadOverview fetches all lists for the overview screen.
func LoadOverview(svc Service) tea.Cmd {
	return func() tea.Msg {
		lists, err := svc.Lists(context.Background())
		return OverviewLoadedMsg{Lists: lists, Err: err}
	}
}

// FetchDetail fetches one list's detail under a generation token.
func FetchDetail(svc Service, listID int64, gen uint64) tea.Cmd {
	return func() tea.Msg {
		list, err := svc.List(context.Background(), listID)
		return ListDetailMsg{Gen: gen, List: list, Err: err}
	}
}

// AddItem runs the add mutation through the gateway and delivers the
// refreshed detail, or a MutationFailedMsg when the mutation was abandoned.
func AddItem(gw *session.Gateway, listID, productID int64, gen uint64) tea.Cmd {
	return func() tea.Msg {
		list, err := gw.AddItem(context.Background(), listID, productID)
		if err != nil {
			return MutationFailedMsg{Err: err}
		}
		return ListDetailMsg{Gen: gen, List: list}
	}
}

// ToggleBought runs the toggle mutation and delivers the refreshed detail.
func ToggleBought(gw *session.Gateway, listID, itemID int64, bought bool, gen uint64) tea.Cmd {
	return func() tea.Msg {
		list, err := gw.ToggleBought(context.Background(), listID, itemID, bought)
		if err != nil {
			return MutationFailedMsg{Err: err}
		}
		return ListDetailMsg{Gen: gen, List: list}
	}
}

// RemoveItem runs the remove mutation and delivers the refreshed detail.
func RemoveItem(gw *session.Gateway, listID, itemID int64, gen uint64) tea.Cmd {
	return func() tea.Msg {
		list, err := gw.RemoveItem(context.Background(), listID, itemID)
		if err != nil {
			return MutationFailedMsg{Err: err}
		}
		return ListDetailMsg{Gen: gen, List: list}
	}
}

// DeleteList deletes a whole list from the overview.
func DeleteList(gw *session.Gateway, listID int64) tea.Cmd {
	return func() tea.Msg {
		return ListDeletedMsg{Err: gw.DeleteList(context.Background(), listID)}
	}
}

// CreateList creates a list from the overview's input dialog.
func CreateList(svc Service, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.CreateList(context.Background(), name)
		return ListCreatedMsg{Err: err}
	}
}

// SendList forwards the active list to the notification relay.
func SendList(svc Service, listID int64) tea.Cmd {
	return func() tea.Msg {
		return SendDoneMsg{Err: svc.SendList(context.Background(), listID)}
	}
}
