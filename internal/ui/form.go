package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gridkit/internal/grid"
)

// FormModel is the row editor: one text input per editable column,
// backed by the grid's staged-value map. It serves both the inline
// form and the popup edit mode; only the framing differs.
type FormModel[T any] struct {
	g      *grid.Grid[T]
	cols   []*grid.Column[T]
	inputs []textinput.Model
	focus  int
	errMsg string
	width  int
}

// NewFormModel builds the editor from the grid's active edit session.
func NewFormModel[T any](g *grid.Grid[T]) FormModel[T] {
	var cols []*grid.Column[T]
	var inputs []textinput.Model
	for _, c := range g.Columns() {
		if !c.Editable {
			continue
		}
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 32
		ti.Prompt = ""
		if v, ok := g.StagedValue(c.ID); ok && v != nil {
			ti.SetValue(fmt.Sprintf("%v", v))
		}
		cols = append(cols, c)
		inputs = append(inputs, ti)
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return FormModel[T]{g: g, cols: cols, inputs: inputs}
}

// SetWidth sets the form width.
func (m *FormModel[T]) SetWidth(w int) {
	m.width = w
}

// Update handles key events while the edit session is active.
func (m FormModel[T]) Update(msg tea.Msg) (FormModel[T], tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch key.String() {
	case "esc":
		m.g.CancelEdit()
		return m, status("Edit cancelled", MsgInfo)
	case "ctrl+s":
		return m.save()
	case "enter":
		if m.focus == len(m.inputs)-1 {
			return m.save()
		}
		m.setFocus(m.focus + 1)
		return m, textinput.Blink
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, textinput.Blink
	}

	return m.updateFocused(msg)
}

func (m FormModel[T]) updateFocused(msg tea.Msg) (FormModel[T], tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel[T]) setFocus(idx int) {
	if len(m.inputs) == 0 {
		return
	}
	if idx < 0 {
		idx = len(m.inputs) - 1
	}
	if idx >= len(m.inputs) {
		idx = 0
	}
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

// save stages every field back into the grid and commits. A veto keeps
// the session (and the form) open so the user can retry.
func (m FormModel[T]) save() (FormModel[T], tea.Cmd) {
	isNew := m.g.EditState() == grid.EditNew

	for i, c := range m.cols {
		sample, _ := m.g.StagedValue(c.ID)
		v, err := parseCell(sample, m.inputs[i].Value())
		if err != nil {
			m.errMsg = fmt.Sprintf("%s: %v", c.Title, err)
			m.setFocus(i)
			return m, nil
		}
		m.g.SetStagedValue(c.ID, v)
	}

	if !m.g.Save() {
		m.errMsg = "Change rejected by a handler"
		return m, status(m.errMsg, MsgError)
	}

	m.errMsg = ""
	if isNew {
		return m, status("Row added", MsgSuccess)
	}
	return m, status("Row updated", MsgSuccess)
}

// View renders the field list; the grid view frames it as an inline
// section or a popup.
func (m FormModel[T]) View() string {
	var b strings.Builder

	title := "Edit row"
	if m.g.EditState() == grid.EditNew {
		title = "New row"
	}
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(DimText.Render("Ctrl+S save | Esc cancel"))
	b.WriteString("\n\n")

	labelW := 0
	for _, c := range m.cols {
		if len(c.Title) > labelW {
			labelW = len(c.Title)
		}
	}

	for i, c := range m.cols {
		label := fmt.Sprintf("%-*s", labelW, c.Title)
		if i == m.focus {
			b.WriteString(AccentText.Render(label))
		} else {
			b.WriteString(DimText.Render(label))
		}
		b.WriteString("  ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorText.Render(m.errMsg))
	}

	return b.String()
}

func status(text string, level MessageType) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text, Level: level}
	}
}

// parseCell converts the entered text back to the staged value's type.
// An untyped (nil) sample stays a string.
func parseCell(sample any, text string) (any, error) {
	switch sample.(type) {
	case int:
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return n, nil
	case int64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return n, nil
	case float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return f, nil
	case bool:
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("not a bool")
		}
		return v, nil
	case time.Time:
		ts, err := time.Parse("2006-01-02", text)
		if err != nil {
			return nil, fmt.Errorf("want YYYY-MM-DD")
		}
		return ts, nil
	default:
		return text, nil
	}
}
