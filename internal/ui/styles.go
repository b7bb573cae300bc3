package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorAccent   = lipgloss.Color("#4ecca3")
	ColorDanger   = lipgloss.Color("#e94560")
	ColorModified = lipgloss.Color("#f0a500")
	ColorDim      = lipgloss.Color("#555555")
)

// Border styles
var (
	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent)

	UnfocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim)

	PopupBorder = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
)

// Text styles
var (
	AccentText   = lipgloss.NewStyle().Foreground(ColorAccent)
	DimText      = lipgloss.NewStyle().Foreground(ColorDim)
	ErrorText    = lipgloss.NewStyle().Foreground(ColorDanger)
	ModifiedText = lipgloss.NewStyle().Foreground(ColorModified)
)

// Header styles
var HeaderStyle = lipgloss.NewStyle().
	Foreground(ColorAccent).
	Bold(true)

// Table cell styles
var (
	CellNormal   = lipgloss.NewStyle()
	CellSelected = lipgloss.NewStyle().Reverse(true)
	CellCursor   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	CellEditing  = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a3a2a")).
			Foreground(ColorAccent).
			Bold(true)
)

// Pagination styles
var (
	PageLink       = lipgloss.NewStyle().Foreground(ColorDim)
	PageLinkActive = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// Status bar
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#cccccc")).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(ColorDanger).
				Padding(0, 1)

	StatusSuccessStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(ColorAccent).
				Padding(0, 1)
)

// Filter prompt styles
var (
	FilterLabel = lipgloss.NewStyle().Foreground(ColorAccent)
	FilterInput = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// Top bar style
var TopBarStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#333333")).
	Foreground(lipgloss.Color("#cccccc")).
	Padding(0, 1)
