package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/tabview/internal/dataview"
	"github.com/rshade/tabview/internal/textutil"
)

// BrowseModel is the Bubble Tea model for the interactive data browser.
// It owns a dataview.Table and translates key presses into its operations,
// so every screen is a straight render of the table's current page.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowseModel struct {
	state ViewState
	data  *dataview.Table
	title string

	// Interactive components
	tbl       table.Model
	textInput textinput.Model
	selected  int

	// Display configuration
	width      int
	height     int
	sortIdx    int // position in the sortable-column cycle, -1 before the first sort
	showSearch bool
}

// NewBrowseModel creates a browser over an already loaded table.
func NewBrowseModel(data *dataview.Table, title string) BrowseModel {
	m := BrowseModel{
		state:     ViewStateList,
		data:      data,
		title:     title,
		width:     defaultWidth,
		height:    defaultHeight,
		sortIdx:   -1,
		textInput: newTextInput(),
	}
	m.tbl = m.buildTable()
	return m
}

// Init initializes the model (Bubble Tea interface).
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.refreshTable()
		return m, nil
	}

	if m.showSearch {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m BrowseModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showSearch = false
			m.textInput.Blur()
			m.data.Search(m.textInput.Value())
			m.refreshTable()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	return m.handleListKeypress(keyMsg)
}

func (m BrowseModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		m.selected = m.tbl.Cursor()
		if m.selected >= 0 && m.selected < len(m.data.CurrentPage()) {
			m.state = ViewStateDetail
		}
		return m, nil
	case keySlash:
		m.showSearch = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.data.SearchQuery() != "" {
			m.textInput.SetValue("")
			m.data.Search("")
			m.refreshTable()
		}
		return m, nil
	case keySort:
		m.cycleSort()
		return m, nil
	case keyReverse:
		m.reverseSort()
		return m, nil
	case keyReset:
		m.resetView()
		return m, nil
	case "left", "pgup":
		m.gotoPage(m.data.Page() - 1)
		return m, nil
	case "right", "pgdown":
		m.gotoPage(m.data.Page() + 1)
		return m, nil
	default:
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(keyMsg)
		return m, cmd
	}
}

func (m BrowseModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyEnter:
			m.state = ViewStateList
			m.tbl.Focus()
			return m, nil
		}
	}
	return m, nil
}

// cycleSort advances to the next sortable column, ascending.
func (m *BrowseModel) cycleSort() {
	sortable := m.sortableColumns()
	if len(sortable) == 0 {
		return
	}

	m.sortIdx = (m.sortIdx + 1) % len(sortable)
	if err := m.data.Sort(sortable[m.sortIdx].Key, true); err != nil {
		return
	}
	m.refreshTable()
}

// reverseSort flips the direction of the active sort, if any.
func (m *BrowseModel) reverseSort() {
	key, ascending := m.data.SortState()
	if key == "" {
		return
	}
	if err := m.data.Sort(key, !ascending); err != nil {
		return
	}
	m.refreshTable()
}

// resetView clears search, sort and pagination back to the initial state.
func (m *BrowseModel) resetView() {
	m.data.Reset()
	m.sortIdx = -1
	m.textInput.SetValue("")
	m.refreshTable()
}

func (m *BrowseModel) gotoPage(page int) {
	if err := m.data.SetPage(page); err != nil {
		return
	}
	m.refreshTable()
}

func (m *BrowseModel) sortableColumns() []dataview.Column {
	var sortable []dataview.Column
	for _, col := range m.data.Columns() {
		if col.Sortable {
			sortable = append(sortable, col)
		}
	}
	return sortable
}

// refreshTable rebuilds the bubbles table from the current page.
func (m *BrowseModel) refreshTable() {
	m.tbl = m.buildTable()
}

// buildTable creates a new table model sized to the current window.
func (m *BrowseModel) buildTable() table.Model {
	dataColumns := m.data.Columns()

	colWidth := minColumnWidth
	if len(dataColumns) > 0 {
		colWidth = (m.width - borderPadding) / len(dataColumns)
	}
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}
	if colWidth > maxColumnWidth {
		colWidth = maxColumnWidth
	}

	columns := make([]table.Column, len(dataColumns))
	for i, col := range dataColumns {
		columns[i] = table.Column{Title: col.Label, Width: colWidth}
	}

	page := m.data.CurrentPage()
	rows := make([]table.Row, len(page))
	for i, rec := range page {
		cells := make(table.Row, len(dataColumns))
		for j, col := range dataColumns {
			cells[j] = textutil.Truncate(m.data.FormatCell(rec, col), colWidth)
		}
		rows[i] = cells
	}

	availableHeight := m.height - chromeHeight
	if availableHeight < minTableHeight {
		availableHeight = minTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}
