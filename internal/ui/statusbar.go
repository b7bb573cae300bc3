package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// MessageType represents the type of status message.
type MessageType int

const (
	MsgInfo MessageType = iota
	MsgSuccess
	MsgError
)

// StatusMsg surfaces grid activity to the status bar.
type StatusMsg struct {
	Text  string
	Level MessageType
}

// StatusBarModel is the context-aware status bar at the bottom.
type StatusBarModel struct {
	message     string
	messageType MessageType
	messageTime time.Time
	editMode    bool
	filterMode  bool
	currentPage int
	lastPage    int
	totalRows   int
	width       int
}

// NewStatusBarModel creates a new status bar.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{currentPage: 1, lastPage: 1}
}

// SetWidth sets the status bar width.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a status message.
func (m *StatusBarModel) SetMessage(msg string, t MessageType) {
	m.message = msg
	m.messageType = t
	m.messageTime = time.Now()
}

// SetEditMode sets whether the grid is in edit mode.
func (m *StatusBarModel) SetEditMode(editing bool) {
	m.editMode = editing
}

// SetFilterMode sets whether the filter prompt is open.
func (m *StatusBarModel) SetFilterMode(filtering bool) {
	m.filterMode = filtering
}

// SetPageInfo updates the pagination summary.
func (m *StatusBarModel) SetPageInfo(current, last, totalRows int) {
	m.currentPage = current
	m.lastPage = last
	m.totalRows = totalRows
}

// ClearExpiredMessage clears success messages after 3 seconds.
func (m *StatusBarModel) ClearExpiredMessage() {
	if m.messageType == MsgSuccess && time.Since(m.messageTime) > 3*time.Second {
		m.message = ""
	}
}

// View renders the status bar.
func (m StatusBarModel) View() string {
	hints := m.contextHints()

	right := fmt.Sprintf("page %d/%d | %d rows", m.currentPage, m.lastPage, m.totalRows)

	// Message overlay
	if m.message != "" {
		var msgStyle lipgloss.Style
		switch m.messageType {
		case MsgError:
			msgStyle = StatusErrorStyle
		case MsgSuccess:
			msgStyle = StatusSuccessStyle
		default:
			msgStyle = StatusBarStyle
		}
		hints = msgStyle.Render(m.message)
	}

	w := m.width
	if w < 20 {
		w = 20
	}
	gap := w - lipgloss.Width(hints) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := hints + strings.Repeat(" ", gap) + right
	return StatusBarStyle.Width(w).Render(line)
}

func (m StatusBarModel) contextHints() string {
	if m.editMode {
		return "Type to edit | Tab Next field | Shift+Tab Prev field | Ctrl+S Save | Esc Cancel"
	}
	if m.filterMode {
		return "Type filter text | Enter Apply | Esc Cancel"
	}
	return "j/k Rows | h/l Columns | s Sort | / Filter | [ ] Page | a Add | e Edit | d Delete | Enter Select"
}
