package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/search"
	"github.com/mmcdole/vocab/internal/tui/styles"
)

const (
	groupListHeaderLines = 5
	groupListFooterLines = 1
)

// groupRow is one rendered row: a group header (member < 0) or a member word
type groupRow struct {
	group  int
	member int
}

func (r groupRow) isHeader() bool { return r.member < 0 }

// GroupList renders the group mapping as collapsible sections
type GroupList struct {
	groups   domain.Groups
	visible  domain.Groups
	expanded map[string]bool
	rows     []groupRow
	loaded   bool

	fromCache bool

	// Selection
	cursor int
	offset int

	// Dimensions
	width  int
	height int

	speaking string

	// Loading state
	loading      bool
	spinnerFrame int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
}

// NewGroupList creates an empty group list
func NewGroupList() *GroupList {
	return &GroupList{
		expanded:    make(map[string]bool),
		filterInput: newFilterInput("Search groups or words..."),
	}
}

// SetGroups replaces the mapping and expands every group
func (g *GroupList) SetGroups(groups domain.Groups, fromCache bool) {
	g.loading = false
	g.loaded = true
	g.fromCache = fromCache
	g.groups = groups
	g.expanded = make(map[string]bool, len(groups))
	for _, grp := range groups {
		g.expanded[grp.Name] = true
	}
	g.cursor, g.offset = 0, 0
	g.applyFilter()
}

func (g *GroupList) Groups() domain.Groups  { return g.groups }
func (g *GroupList) Visible() domain.Groups { return g.visible }
func (g *GroupList) FromCache() bool        { return g.fromCache }
func (g *GroupList) Loaded() bool           { return g.loaded }

func (g *GroupList) SetLoading(loading bool) { g.loading = loading }
func (g *GroupList) IsLoading() bool         { return g.loading }

func (g *GroupList) SetSpinnerFrame(frame int) { g.spinnerFrame = frame }

func (g *GroupList) SetSpeaking(word string) { g.speaking = word }

// IsExpanded reports whether the named group shows its members
func (g *GroupList) IsExpanded(name string) bool { return g.expanded[name] }

// Toggle expands or collapses the group under the cursor.
// On a member row it collapses the member's group.
func (g *GroupList) Toggle() {
	if g.cursor >= len(g.rows) {
		return
	}
	row := g.rows[g.cursor]
	name := g.visible[row.group].Name
	g.expanded[name] = !g.expanded[name]
	g.rebuildRows()
	g.cursor = g.headerRow(row.group)
	g.ensureVisible()
}

// SetAllExpanded expands or collapses every group
func (g *GroupList) SetAllExpanded(expanded bool) {
	current := -1
	if g.cursor < len(g.rows) {
		current = g.rows[g.cursor].group
	}
	for _, grp := range g.groups {
		g.expanded[grp.Name] = expanded
	}
	g.rebuildRows()
	g.cursor = 0
	if current >= 0 {
		g.cursor = g.headerRow(current)
	}
	g.ensureVisible()
}

// Selected returns the member entry under the cursor
func (g *GroupList) Selected() (domain.Entry, bool) {
	if g.cursor >= len(g.rows) {
		return domain.Entry{}, false
	}
	row := g.rows[g.cursor]
	if row.isHeader() {
		return domain.Entry{}, false
	}
	return g.visible[row.group].Entries[row.member], true
}

// SelectedGroup returns the name of the group under the cursor
func (g *GroupList) SelectedGroup() (string, bool) {
	if g.cursor >= len(g.rows) {
		return "", false
	}
	return g.visible[g.rows[g.cursor].group].Name, true
}

// === Filter ===

// SearchTerm returns the active filter text
func (g *GroupList) SearchTerm() string {
	if !g.filterActive {
		return ""
	}
	return strings.TrimSpace(g.filterInput.Value())
}

func (g *GroupList) IsFiltering() bool { return g.filterActive }

// IsFilterTyping returns true if filter is active AND input is focused
func (g *GroupList) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// StartFilter activates the filter input
func (g *GroupList) StartFilter() tea.Cmd {
	g.filterActive = true
	return g.filterInput.Focus()
}

// ClearFilter deactivates the filter and shows all groups
func (g *GroupList) ClearFilter() {
	g.filterActive = false
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.cursor, g.offset = 0, 0
	g.applyFilter()
}

func (g *GroupList) applyFilter() {
	g.visible = search.FilterGroups(g.groups, g.SearchTerm())
	g.rebuildRows()
	if g.cursor >= len(g.rows) {
		g.cursor = len(g.rows) - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	g.ensureVisible()
}

func (g *GroupList) rebuildRows() {
	g.rows = g.rows[:0]
	for gi, grp := range g.visible {
		g.rows = append(g.rows, groupRow{group: gi, member: -1})
		if !g.expanded[grp.Name] {
			continue
		}
		for mi := range grp.Entries {
			g.rows = append(g.rows, groupRow{group: gi, member: mi})
		}
	}
}

func (g *GroupList) headerRow(group int) int {
	for i, r := range g.rows {
		if r.group == group && r.isHeader() {
			return i
		}
	}
	return 0
}

// === Update ===

// Update handles navigation, filter and expand keys
func (g *GroupList) Update(msg tea.Msg) tea.Cmd {
	if g.IsFilterTyping() {
		if km, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(km, ListKeys.Escape):
				g.ClearFilter()
				return nil
			case key.Matches(km, ListKeys.Accept):
				g.filterInput.Blur()
				return nil
			case km.String() == "backspace" && g.filterInput.Value() == "":
				g.ClearFilter()
				return nil
			}
		}

		var cmd tea.Cmd
		before := g.filterInput.Value()
		g.filterInput, cmd = g.filterInput.Update(msg)
		if g.filterInput.Value() != before {
			g.cursor, g.offset = 0, 0
			g.applyFilter()
		}
		return cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(km, ListKeys.Filter):
		return g.StartFilter()
	case key.Matches(km, ListKeys.Escape):
		if g.filterActive {
			g.ClearFilter()
		}
		return nil
	case key.Matches(km, ListKeys.Accept):
		g.Toggle()
		return nil
	case key.Matches(km, GroupKeys.ExpandAll):
		g.SetAllExpanded(true)
		return nil
	case key.Matches(km, GroupKeys.CollapseAll):
		g.SetAllExpanded(false)
		return nil
	}

	count := len(g.rows)
	if count == 0 {
		return nil
	}
	half := max(1, g.bodyHeight()/2)

	switch {
	case key.Matches(km, ListKeys.Down):
		if g.cursor < count-1 {
			g.cursor++
		}
	case key.Matches(km, ListKeys.Up):
		if g.cursor > 0 {
			g.cursor--
		}
	case key.Matches(km, ListKeys.Home):
		g.cursor = 0
		g.offset = 0
	case key.Matches(km, ListKeys.End):
		g.cursor = count - 1
	case key.Matches(km, ListKeys.HalfDown):
		g.cursor = min(g.cursor+half, count-1)
	case key.Matches(km, ListKeys.HalfUp):
		g.cursor = max(g.cursor-half, 0)
	default:
		return nil
	}
	g.ensureVisible()
	return nil
}

// === Layout ===

func (g *GroupList) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.filterInput.Width = max(10, width-4)
	g.ensureVisible()
}

func (g *GroupList) bodyHeight() int {
	h := g.height - groupListHeaderLines - groupListFooterLines - ScrollIndicatorLines
	if h < 1 {
		h = 1
	}
	return h
}

func (g *GroupList) ensureVisible() {
	if g.height <= 0 || len(g.rows) == 0 {
		g.offset = 0
		return
	}
	// Every row is one line
	heights := make([]int, len(g.rows))
	for i := range heights {
		heights[i] = 1
	}
	g.offset = scrollOffset(heights, g.cursor, g.offset, g.bodyHeight())
}

// === Rendering ===

// Subtitle summarizes the whole mapping, not the filtered view
func (g *GroupList) Subtitle() string {
	return fmt.Sprintf("Explore %d words organized into %d meaningful groups", g.groups.WordCount(), len(g.groups))
}

// EmptyText is shown when no group is visible
func (g *GroupList) EmptyText() string {
	if g.SearchTerm() != "" {
		return "No groups found matching your search"
	}
	return "No word groups yet"
}

func (g *GroupList) renderStats() string {
	stats := []string{
		styles.BadgeStyle.Render(fmt.Sprintf("Total Groups %d", len(g.groups))),
		styles.BadgeStyle.Render(fmt.Sprintf("Total Words %d", g.groups.WordCount())),
		styles.DimBadgeStyle.Render(fmt.Sprintf("Avg per Group %d", g.groups.AverageSize())),
	}
	line := strings.Join(stats, " ")
	if g.fromCache {
		line += " " + styles.DimStyle.Render("(cached)")
	}
	return line
}

func (g *GroupList) View() string {
	filter := styles.DimStyle.Render("/ search")
	if g.filterActive {
		filter = g.filterInput.View()
	}

	lines := []string{
		styles.TitleStyle.Render("Word Groups"),
		styles.SubtitleStyle.Render(g.Subtitle()),
		g.renderStats(),
		filter,
		"",
	}

	lines = append(lines, padLines(g.renderBody(), g.bodyHeight()+ScrollIndicatorLines)...)

	footer := ""
	if len(g.rows) > 0 {
		footer = styles.HelpHint("enter", "expand/collapse", "E", "expand all", "C", "collapse all")
	}
	lines = append(lines, footer)

	return strings.Join(lines, "\n")
}

func (g *GroupList) renderBody() []string {
	if g.loading && !g.loaded {
		return []string{"", styles.RenderSpinner(g.spinnerFrame) + styles.DimStyle.Render(" Loading...")}
	}
	if len(g.rows) == 0 {
		return []string{"", styles.DimStyle.Render(g.EmptyText())}
	}

	blocks := make([][]string, len(g.rows))
	for i, row := range g.rows {
		blocks[i] = []string{g.renderRow(row, i == g.cursor)}
	}
	window, end := renderWindow(blocks, g.offset, g.bodyHeight())

	header := ""
	if g.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := ""
	if end < len(g.rows) {
		footer = styles.DimStyle.Render("↓ more")
	}

	lines := append([]string{header}, padLines(window, g.bodyHeight())...)
	return append(lines, footer)
}

func (g *GroupList) renderRow(row groupRow, selected bool) string {
	width := max(20, g.width)

	marker := "  "
	if selected {
		marker = styles.AccentStyle.Render(styles.CursorChar) + " "
	}

	grp := g.visible[row.group]
	if row.isHeader() {
		arrow := styles.CollapsedChar
		if g.expanded[grp.Name] {
			arrow = styles.ExpandedChar
		}
		nameStyle := styles.WordStyle
		if selected {
			nameStyle = styles.SelectedWordStyle
		}
		return marker + styles.AccentStyle.Render(arrow) + " " +
			nameStyle.Render(grp.Name) + "  " +
			styles.DimStyle.Render(styles.Plural(len(grp.Entries), "word", "words"))
	}

	e := grp.Entries[row.member]
	wordStyle := styles.WordStyle
	if selected {
		wordStyle = styles.SelectedWordStyle
	}
	line := marker + "    " + wordStyle.Render(e.Word)
	if e.Word == g.speaking {
		line += " " + styles.AccentStyle.Render(styles.SpeakingChar)
	}
	room := width - lipgloss.Width(line) - 2
	if e.Meaning != "" && room > 3 {
		line += "  " + styles.MeaningStyle.Render(styles.Truncate(e.Meaning, room))
	}
	return line
}
