package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridkit/internal/grid"
	"gridkit/internal/ui"
)

// ReadFunc services remote read requests: one page of pre-filtered,
// pre-sorted items plus the unpaged total.
type ReadFunc[T any] func(ctx context.Context, req grid.ReadRequest) ([]T, int, error)

// readBox carries the most recent read request dispatched by the grid
// during an update. It is shared by all copies of the model so the
// dispatch survives Bubble Tea's value semantics.
type readBox struct {
	req *grid.ReadRequest
}

// tickMsg is sent to clear expired status messages.
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

// dataMsg carries a completed remote read back to the app.
type dataMsg[T any] struct {
	items []T
	total int
	err   error
}

// Model is the root Bubble Tea model: the grid view over a shared grid
// plus the status bar, and the remote-load round trip when a loader is
// configured.
type Model[T any] struct {
	title     string
	g         *grid.Grid[T]
	gridview  ui.GridView[T]
	statusbar ui.StatusBarModel
	load      ReadFunc[T]
	box       *readBox
	width     int
	height    int
}

// NewModel creates the root app model. A nil load keeps the grid in
// local mode; otherwise the grid switches to remote mode and load
// services every read request.
func NewModel[T any](title string, g *grid.Grid[T], load ReadFunc[T]) Model[T] {
	box := &readBox{}
	if load != nil {
		g.OnReadData(func(req grid.ReadRequest) {
			r := req
			box.req = &r
		})
	}

	gv := ui.NewGridView(g)
	gv.SetFocused(true)

	return Model[T]{
		title:     title,
		g:         g,
		gridview:  gv,
		statusbar: ui.NewStatusBarModel(),
		load:      load,
		box:       box,
	}
}

// Init starts the app and issues the initial load.
func (m Model[T]) Init() tea.Cmd {
	m.g.Refresh()
	if cmd := m.drainRead(); cmd != nil {
		return tea.Batch(tickCmd(), cmd)
	}
	return tickCmd()
}

// drainRead turns a pending read dispatch into a command running the
// loader off the update loop. Only the newest request is serviced.
func (m Model[T]) drainRead() tea.Cmd {
	if m.load == nil || m.box.req == nil {
		return nil
	}
	req := *m.box.req
	m.box.req = nil
	load := m.load
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		items, total, err := load(ctx, req)
		return dataMsg[T]{items: items, total: total, err: err}
	}
}

// Update handles all messages.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.statusbar.ClearExpiredMessage()
		return m, tickCmd()

	case ui.StatusMsg:
		m.statusbar.SetMessage(msg.Text, msg.Level)
		return m, nil

	case dataMsg[T]:
		if msg.err != nil {
			m.statusbar.SetMessage("Load failed: "+msg.err.Error(), ui.MsgError)
			return m, nil
		}
		m.g.SetData(msg.items, msg.total)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.gridview, cmd = m.gridview.Update(msg)
	m.statusbar.SetEditMode(m.gridview.IsEditing())
	m.statusbar.SetFilterMode(m.gridview.IsFiltering())
	m.statusbar.SetPageInfo(m.g.CurrentPage(), m.g.LastPage(), m.g.Total())

	if readCmd := m.drainRead(); readCmd != nil {
		return m, tea.Batch(cmd, readCmd)
	}
	return m, cmd
}

// View renders the full layout.
func (m Model[T]) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	topBar := ui.TopBarStyle.Width(m.width - 2).Render(" " + m.title + " ")

	gridH := m.height - 3 // top bar + status bar + spacing
	if gridH < 6 {
		gridH = 6
	}
	m.gridview.SetSize(m.width, gridH)
	m.statusbar.SetWidth(m.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		topBar,
		m.gridview.View(),
		m.statusbar.View(),
	)
}
