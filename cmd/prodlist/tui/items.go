package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akorchak/prodlist/internal/api"
	"github.com/akorchak/prodlist/internal/basket"
)

// ItemsPane is the right pane of an open list: its items, with checkbox
// state, per-item subtotals, and the running total. A dangling item (deleted
// product) renders as a placeholder row and never contributes to the total.
type ItemsPane struct {
	title    string
	items    []api.ListItem
	cursor   int
	offset   int
	height   int
	width    int
	focused  bool
	currency string
}

// NewItemsPane creates an empty pane.
func NewItemsPane(currency string) ItemsPane {
	return ItemsPane{height: 12, currency: currency}
}

// SetList replaces the pane's content with freshly fetched detail.
func (ip *ItemsPane) SetList(list *api.ShoppingList) {
	ip.title = list.Name
	ip.items = list.Items
	if ip.cursor >= len(ip.items) {
		ip.cursor = len(ip.items) - 1
	}
	if ip.cursor < 0 {
		ip.cursor = 0
	}
	ip.clampOffset()
}

// Clear empties the pane (list closed).
func (ip *ItemsPane) Clear() {
	ip.title = ""
	ip.items = nil
	ip.cursor = 0
	ip.offset = 0
}

// Selected returns the item under the cursor, or nil for an empty list.
func (ip ItemsPane) Selected() *api.ListItem {
	if len(ip.items) == 0 {
		return nil
	}
	return &ip.items[ip.cursor]
}

// SetFocused toggles keyboard focus.
func (ip *ItemsPane) SetFocused(focused bool) {
	ip.focused = focused
}

// SetSize distributes available space to the pane.
func (ip *ItemsPane) SetSize(width, height int) {
	ip.width = width
	// Title row, blank separator, rows, total row.
	ip.height = height - 3
	if ip.height < 1 {
		ip.height = 1
	}
	ip.clampOffset()
}

// Update handles cursor movement while the pane has focus.
func (ip ItemsPane) Update(msg tea.Msg) (ItemsPane, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if ip.cursor > 0 {
				ip.cursor--
			}
			ip.clampOffset()
		case "down", "j":
			if ip.cursor < len(ip.items)-1 {
				ip.cursor++
			}
			ip.clampOffset()
		}
	}
	return ip, nil
}

// View renders the title, item rows, and total. An empty list gets a distinct
// message rather than a bare zero total.
func (ip ItemsPane) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(ip.title))
	b.WriteString("\n\n")

	if len(ip.items) == 0 {
		b.WriteString(PlaceholderStyle.Render("List is empty. Pick products on the left."))
		b.WriteString("\n\n")
		b.WriteString("Total: " + PriceStyle.Render(basket.Format(basket.Total(nil), ip.currency)))
		return b.String()
	}

	end := ip.offset + ip.height
	if end > len(ip.items) {
		end = len(ip.items)
	}
	for i := ip.offset; i < end; i++ {
		b.WriteString(ip.renderRow(ip.items[i], i == ip.cursor))
		b.WriteString("\n")
	}
	if end < len(ip.items) {
		b.WriteString(DimStyle.Render(fmt.Sprintf("… %d more", len(ip.items)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("Total: " + PriceStyle.Render(basket.Format(basket.Total(ip.items), ip.currency)))
	return b.String()
}

func (ip ItemsPane) renderRow(item api.ListItem, current bool) string {
	prefix := "  "
	if current && ip.focused {
		prefix = CursorStyle.Render("> ")
	}

	check := "[ ]"
	if item.IsBought {
		check = "[x]"
	}

	// Dangling item: the product was deleted; render a placeholder, never an
	// error.
	if item.Product == nil {
		return fmt.Sprintf("%s%s %s", prefix, check,
			PlaceholderStyle.Render("(product removed)"))
	}

	name := item.Product.Name
	if item.IsBought {
		name = BoughtStyle.Render(name)
	} else if current && ip.focused {
		name = CursorStyle.Render(name)
	}

	subtotal := basket.Format(basket.Subtotal(item), ip.currency)
	qty := DimStyle.Render(fmt.Sprintf("×%d", item.Quantity))

	return fmt.Sprintf("%s%s %s %s  %s", prefix, check, name, qty,
		PriceStyle.Render(subtotal))
}

func (ip *ItemsPane) clampOffset() {
	if ip.cursor < ip.offset {
		ip.offset = ip.cursor
	}
	if ip.cursor >= ip.offset+ip.height {
		ip.offset = ip.cursor - ip.height + 1
	}
	if ip.offset < 0 {
		ip.offset = 0
	}
}
