package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// ViewState identifies which screen the browser is showing.
type ViewState int

// Browser screens.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// Key bindings handled by the browser.
const (
	keyQuit    = "q"
	keyCtrlC   = "ctrl+c"
	keyEnter   = "enter"
	keyEsc     = "esc"
	keySlash   = "/"
	keySort    = "s"
	keyReverse = "r"
	keyReset   = "R"
)

// Layout constants.
const (
	defaultWidth   = 120
	defaultHeight  = 30
	borderPadding  = 2
	chromeHeight   = 6 // title, status bar, help line, spacing
	minTableHeight = 5
	minColumnWidth = 8
	maxColumnWidth = 40
	searchLimit    = 64
)

// Shared lipgloss styles.
//
//nolint:gochecknoglobals // Styles are package-wide render configuration.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// newTextInput builds the search input used by the browser.
func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter rows"
	ti.Prompt = "/ "
	ti.CharLimit = searchLimit
	ti.Width = 40 //nolint:mnd // Input width.
	return ti
}
