package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akorchak/prodlist/internal/api"
)

// Overview is the list-of-lists screen shown before a list is opened.
type Overview struct {
	lists  []api.ShoppingList
	cursor int
	offset int
	height int
	width  int
}

// NewOverview creates an empty overview.
func NewOverview() Overview {
	return Overview{height: 16}
}

// SetLists replaces the displayed lists and clamps the cursor.
func (o *Overview) SetLists(lists []api.ShoppingList) {
	o.lists = lists
	if o.cursor >= len(lists) {
		o.cursor = len(lists) - 1
	}
	if o.cursor < 0 {
		o.cursor = 0
	}
	o.clampOffset()
}

// Selected returns the list under the cursor, or nil when there are none.
func (o Overview) Selected() *api.ShoppingList {
	if len(o.lists) == 0 {
		return nil
	}
	return &o.lists[o.cursor]
}

// SetSize distributes available space to the screen.
func (o *Overview) SetSize(width, height int) {
	o.width = width
	// Title row, blank separator, rows.
	o.height = height - 2
	if o.height < 1 {
		o.height = 1
	}
	o.clampOffset()
}

// Update handles cursor movement.
func (o Overview) Update(msg tea.Msg) (Overview, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if o.cursor > 0 {
				o.cursor--
			}
			o.clampOffset()
		case "down", "j":
			if o.cursor < len(o.lists)-1 {
				o.cursor++
			}
			o.clampOffset()
		}
	}
	return o, nil
}

// View renders the overview.
func (o Overview) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Shopping lists"))
	b.WriteString("\n\n")

	if len(o.lists) == 0 {
		b.WriteString(PlaceholderStyle.Render("No lists yet. Press n to create one."))
		return b.String()
	}

	end := o.offset + o.height
	if end > len(o.lists) {
		end = len(o.lists)
	}
	for i := o.offset; i < end; i++ {
		list := o.lists[i]
		prefix := "  "
		name := list.Name
		if i == o.cursor {
			prefix = CursorStyle.Render("> ")
			name = CursorStyle.Render(name)
		}
		created := DimStyle.Render(list.CreatedAt.Format("2006-01-02"))
		b.WriteString(fmt.Sprintf("%s%s  %s", prefix, name, created))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(o.lists) {
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(fmt.Sprintf("… %d more", len(o.lists)-end)))
	}
	return b.String()
}

func (o *Overview) clampOffset() {
	if o.cursor < o.offset {
		o.offset = o.cursor
	}
	if o.cursor >= o.offset+o.height {
		o.offset = o.cursor - o.height + 1
	}
	if o.offset < 0 {
		o.offset = 0
	}
}
