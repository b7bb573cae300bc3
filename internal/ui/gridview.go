package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridkit/internal/grid"
)

// GridView renders a grid.Grid and translates key events into grid
// operations: cursor movement, sort clicks, filter entry, paging and
// the edit commands.
type GridView[T any] struct {
	grid      *grid.Grid[T]
	focused   bool
	width     int
	height    int
	cursor    int // row index within the current page
	cursorCol int

	filtering   bool
	filterInput textinput.Model

	form FormModel[T]
}

// NewGridView creates a view over a grid.
func NewGridView[T any](g *grid.Grid[T]) GridView[T] {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 24
	ti.Prompt = ""
	return GridView[T]{grid: g, filterInput: ti}
}

// Grid returns the underlying grid.
func (m GridView[T]) Grid() *grid.Grid[T] {
	return m.grid
}

// SetFocused sets focus state.
func (m *GridView[T]) SetFocused(f bool) {
	m.focused = f
}

// SetSize sets the view dimensions.
func (m *GridView[T]) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// IsEditing reports whether the row editor is open.
func (m GridView[T]) IsEditing() bool {
	return m.grid.EditState() != grid.EditNone
}

// IsFiltering reports whether the filter prompt is open.
func (m GridView[T]) IsFiltering() bool {
	return m.filtering
}

// Init satisfies tea.Model.
func (m GridView[T]) Init() tea.Cmd {
	return nil
}

// Update handles key events.
func (m GridView[T]) Update(msg tea.Msg) (GridView[T], tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if m.IsEditing() {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.filtering {
		return m.updateFilterMode(key)
	}
	return m.updateNavMode(key)
}

func (m GridView[T]) updateNavMode(msg tea.KeyMsg) (GridView[T], tea.Cmd) {
	rows := m.grid.Rows()
	cols := m.grid.Columns()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < len(cols)-1 {
			m.cursorCol++
		}
	case "[", "pgup":
		m.grid.PrevPage()
		m.clampCursor()
	case "]", "pgdown":
		m.grid.NextPage()
		m.clampCursor()
	case "s":
		c := m.columnAt(m.cursorCol)
		if c != nil {
			m.grid.SortClick(c)
			m.clampCursor()
		}
	case "/":
		c := m.columnAt(m.cursorCol)
		if c == nil || !c.Filterable || c.Kind == grid.KindCommand {
			return m, status("Column is not filterable", MsgInfo)
		}
		m.filtering = true
		m.filterInput.SetValue(c.Filter.Search)
		m.filterInput.Focus()
		return m, textinput.Blink
	case "enter":
		if m.cursor < len(rows) {
			m.grid.SelectRow(rows[m.cursor])
		}
	case "a":
		m.grid.BeginNew()
		if m.IsEditing() {
			m.form = NewFormModel(m.grid)
			return m, textinput.Blink
		}
	case "e":
		if m.cursor < len(rows) {
			m.grid.BeginEdit(rows[m.cursor])
			if m.IsEditing() {
				m.form = NewFormModel(m.grid)
				return m, textinput.Blink
			}
		}
	case "d":
		if m.cursor < len(rows) {
			if m.grid.Delete(rows[m.cursor]) {
				m.clampCursor()
				return m, status("Row deleted", MsgSuccess)
			}
			return m, status("Delete cancelled by a handler", MsgError)
		}
	}
	return m, nil
}

func (m GridView[T]) updateFilterMode(msg tea.KeyMsg) (GridView[T], tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		c := m.columnAt(m.cursorCol)
		if c != nil {
			m.grid.SetFilter(c.ID, strings.TrimSpace(m.filterInput.Value()))
			m.clampCursor()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *GridView[T]) clampCursor() {
	rows := m.grid.Rows()
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m GridView[T]) columnAt(idx int) *grid.Column[T] {
	cols := m.grid.Columns()
	if idx < 0 || idx >= len(cols) {
		return nil
	}
	return cols[idx]
}

// View renders the table with its pagination bar, or the editor when a
// session is active.
func (m GridView[T]) View() string {
	borderStyle := UnfocusedBorder
	if m.focused {
		borderStyle = FocusedBorder
	}

	innerW := m.width - 2
	if innerW < 10 {
		innerW = 10
	}
	innerH := m.height - 2
	if innerH < 3 {
		innerH = 3
	}

	var content string
	if m.IsEditing() && m.grid.Options().EditMode == grid.EditModePopup {
		content = m.renderPopup(innerW, innerH)
	} else if m.IsEditing() {
		content = m.form.View()
	} else {
		content = m.renderTable(innerW, innerH)
	}

	return borderStyle.Width(innerW).Height(innerH).MaxHeight(innerH + 2).Render(content)
}

func (m GridView[T]) renderPopup(w, h int) string {
	popup := PopupBorder.Render(m.form.View())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
		popup, lipgloss.WithWhitespaceChars(" "))
}

func (m GridView[T]) renderTable(w, h int) string {
	cols := m.grid.Columns()
	rows := m.grid.Rows()
	if len(cols) == 0 {
		return DimText.Render("No columns configured")
	}

	widths := m.colWidths(cols, rows)

	var b strings.Builder

	if m.filtering {
		c := m.columnAt(m.cursorCol)
		label := ""
		if c != nil {
			label = c.Title
		}
		b.WriteString(FilterLabel.Render(fmt.Sprintf("Filter %s: ", label)))
		b.WriteString(FilterInput.Render(m.filterInput.View()))
		b.WriteString("\n")
	}

	// Header with sort markers and active filters
	headerParts := make([]string, 0, len(cols))
	for i, c := range cols {
		name := c.Title
		if m.grid.SortColumn() == c {
			if c.Direction == grid.Descending {
				name += " ▼"
			} else {
				name += " ▲"
			}
		}
		if c.Filter.Search != "" {
			name += " /" + c.Filter.Search
		}
		style := HeaderStyle
		if i == m.cursorCol && m.focused {
			style = HeaderStyle.Underline(true)
		}
		headerParts = append(headerParts, style.Width(widths[i]).Render(truncate(name, widths[i])))
	}
	b.WriteString(strings.Join(headerParts, " | "))
	b.WriteString("\n")

	sepParts := make([]string, 0, len(cols))
	for i := range cols {
		sepParts = append(sepParts, strings.Repeat("─", widths[i]))
	}
	b.WriteString(DimText.Render(strings.Join(sepParts, "─┼─")))
	b.WriteString("\n")

	selected, hasSelected := m.grid.SelectedRow()

	for ri, item := range rows {
		rowParts := make([]string, 0, len(cols))
		for ci, c := range cols {
			val := truncate(sanitizeCell(c.Text(item)), widths[ci])

			var style lipgloss.Style
			switch {
			case ri == m.cursor && m.focused:
				style = CellSelected
			case hasSelected && any(item) == any(selected):
				style = CellCursor
			default:
				style = CellNormal
			}
			rowParts = append(rowParts, style.Width(widths[ci]).Render(val))
		}
		b.WriteString(strings.Join(rowParts, " | "))
		b.WriteString("\n")
	}

	if len(rows) == 0 {
		b.WriteString(DimText.Render("No rows"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPager())
	return b.String()
}

// renderPager draws the visible page-link window with prev/next arrows.
func (m GridView[T]) renderPager() string {
	last := m.grid.LastPage()
	current := m.grid.CurrentPage()
	first, lastVisible := m.grid.PageLinks()

	var parts []string
	parts = append(parts, PageLink.Render("‹"))
	for p := first; p <= lastVisible; p++ {
		if p == current {
			parts = append(parts, PageLinkActive.Render(fmt.Sprintf("[%d]", p)))
		} else {
			parts = append(parts, PageLink.Render(fmt.Sprintf("%d", p)))
		}
	}
	parts = append(parts, PageLink.Render("›"))
	parts = append(parts, DimText.Render(fmt.Sprintf("  page %d of %d", current, last)))
	return strings.Join(parts, " ")
}

func (m GridView[T]) colWidths(cols []*grid.Column[T], rows []T) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		w := utf8.RuneCountInString(c.Title) + 2 // room for the sort marker
		if w < 6 {
			w = 6
		}
		for _, item := range rows {
			if l := utf8.RuneCountInString(c.Text(item)); l > w {
				w = l
			}
		}
		if w > 24 {
			w = 24
		}
		widths[i] = w
	}
	return widths
}

func sanitizeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "↵")
	s = strings.ReplaceAll(s, "\n", "↵")
	s = strings.ReplaceAll(s, "\r", "↵")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
