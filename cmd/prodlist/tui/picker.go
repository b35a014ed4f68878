package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akorchak/prodlist/internal/api"
	"github.com/akorchak/prodlist/internal/basket"
)

// Picker is the left pane of an open list: a live search input over the
// catalog and the filtered, price-sorted results. The filtering itself lives
// in the session controller; the picker only renders what it is handed and
// tracks a cursor.
type Picker struct {
	input    textinput.Model
	results  []api.Product
	cursor   int
	offset   int // scroll offset for long result lists
	height   int // visible result rows
	width    int
	focused  bool
	currency string
}

// NewPicker creates a picker with an empty query.
func NewPicker(currency string) Picker {
	ti := textinput.New()
	ti.Placeholder = "search products"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return Picker{
		input:    ti,
		height:   12,
		currency: currency,
	}
}

// Reset clears the query and cursor. Called on every list open so the picker
// starts unfiltered.
func (p *Picker) Reset() {
	p.input.SetValue("")
	p.cursor = 0
	p.offset = 0
}

// SetResults replaces the displayed results and clamps the cursor.
func (p *Picker) SetResults(results []api.Product) {
	p.results = results
	if p.cursor >= len(results) {
		p.cursor = len(results) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.clampOffset()
}

// Query returns the current query text.
func (p Picker) Query() string {
	return p.input.Value()
}

// Selected returns the product under the cursor, or nil when there are no
// results.
func (p Picker) Selected() *api.Product {
	if len(p.results) == 0 {
		return nil
	}
	return &p.results[p.cursor]
}

// SetFocused toggles keyboard focus. The text input only blinks while the
// picker pane is focused.
func (p *Picker) SetFocused(focused bool) {
	p.focused = focused
	if focused {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

// SetSize distributes available space to the pane.
func (p *Picker) SetSize(width, height int) {
	p.width = width
	// Input row, blank separator, results.
	p.height = height - 2
	if p.height < 1 {
		p.height = 1
	}
	p.input.Width = width - 4
	p.clampOffset()
}

// Update handles key messages while the picker has focus. Cursor movement is
// handled here; everything else goes to the text input.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
			p.clampOffset()
			return p, nil
		case "down":
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}
			p.clampOffset()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the search input and the result rows.
func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.results) == 0 {
		b.WriteString(PlaceholderStyle.Render("no products match"))
		return b.String()
	}

	end := p.offset + p.height
	if end > len(p.results) {
		end = len(p.results)
	}
	for i := p.offset; i < end; i++ {
		product := p.results[i]
		b.WriteString(p.renderRow(product, i == p.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(p.results) {
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(fmt.Sprintf("… %d more", len(p.results)-end)))
	}
	return b.String()
}

func (p Picker) renderRow(product api.Product, current bool) string {
	prefix := "  "
	if current && p.focused {
		prefix = CursorStyle.Render("> ")
	}

	name := product.Name
	if current && p.focused {
		name = CursorStyle.Render(name)
	}

	detail := ""
	if product.Shop != nil {
		detail = DimStyle.Render(" · " + product.Shop.Name)
	}
	price := PriceStyle.Render(basket.Format(product.Price, p.currency))

	return fmt.Sprintf("%s%s%s  %s", prefix, name, detail, price)
}

func (p *Picker) clampOffset() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}
