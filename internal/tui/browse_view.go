package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current view (Bubble Tea interface).
func (m BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderListView renders the table with the status bar and optional search input.
func (m BrowseModel) renderListView() string {
	sections := []string{
		TitleStyle.Render(m.title),
		m.tbl.View(),
		m.renderStatusBar(),
		m.renderHelpLine(),
	}

	if m.showSearch {
		searchView := LabelStyle.Render("Search: ") + m.textInput.View()
		sections = append(sections, searchView)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatusBar displays pagination, sort and filter state.
func (m BrowseModel) renderStatusBar() string {
	info := m.data.PageInfo()

	status := fmt.Sprintf("Rows %d-%d of %d | Page %d/%d",
		info.StartRow, info.EndRow, info.TotalRows, info.CurrentPage, info.TotalPages)

	if key, ascending := m.data.SortState(); key != "" {
		direction := "asc"
		if !ascending {
			direction = "desc"
		}
		status += fmt.Sprintf(" | Sort: %s %s", key, direction)
	}

	if query := m.data.SearchQuery(); query != "" {
		status += fmt.Sprintf(" | Filter: %q", query)
	}

	return InfoStyle.Render(status)
}

// renderHelpLine displays the key bindings.
func (m BrowseModel) renderHelpLine() string {
	help := "Press left/right to page, '/' to filter, 's' to sort, 'r' to reverse, 'R' to reset, 'q' to quit"
	return SubtleStyle.Render(help)
}

// renderDetailView renders every field of the selected row.
func (m BrowseModel) renderDetailView() string {
	page := m.data.CurrentPage()
	if m.selected < 0 || m.selected >= len(page) {
		return SubtleStyle.Render("No row selected.")
	}

	rec := page[m.selected]
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ROW DETAIL"))
	content.WriteString("\n\n")

	labelWidth := 0
	for _, col := range m.data.Columns() {
		if len(col.Label) > labelWidth {
			labelWidth = len(col.Label)
		}
	}

	for _, col := range m.data.Columns() {
		label := fmt.Sprintf("%-*s ", labelWidth+1, col.Label+":")
		content.WriteString(LabelStyle.Render(label))
		content.WriteString(ValueStyle.Render(m.data.FormatCell(rec, col)))
		content.WriteString("\n")
	}

	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}
