package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/vocab/internal/tui/styles"
)

func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	// Handle modal states
	switch m.State {
	case StateHelp:
		return m.renderHelp()
	case StateAlert:
		return m.renderAlert()
	}

	height := m.Height - ChromeHeight
	if height < 1 {
		height = 1
	}
	page := styles.PageStyle.
		Height(height).
		MaxHeight(height).
		Render(m.renderPage())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		page,
		m.renderFooter(),
	)
}

func (m Model) renderPage() string {
	switch m.Page {
	case PageGroups:
		return m.Groups.View()
	case PageAdd:
		return m.Upload.View()
	}
	if list := m.activeList(); list != nil {
		return list.View()
	}
	return ""
}

// renderTabs renders the page bar with the active page highlighted
func (m Model) renderTabs() string {
	tabs := []string{styles.AccentStyle.Bold(true).Render(" vocab ")}
	for p := Page(0); p < pageCount; p++ {
		label := fmt.Sprintf("%d %s", int(p)+1, p)
		if p == m.Page {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// pageHints returns the footer hints for the current page
func (m Model) pageHints() string {
	switch m.Page {
	case PageWords:
		return styles.HelpHint("/", "search", "p", "pronounce", "d", "details", "x", "delete")
	case PageGroups:
		return styles.HelpHint("/", "search", "enter", "expand", "p", "pronounce")
	case PageRandom:
		return styles.HelpHint("r", "new words", "p", "pronounce", "d", "details")
	case PageTones:
		return styles.HelpHint("/", "search", "p", "pronounce", "d", "details")
	case PageAdd:
		if m.Upload.IsUploading() {
			return styles.HelpHint("esc", "cancel upload")
		}
		return styles.HelpHint("C-s", "add words")
	}
	return ""
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	// Left side: spinner + status when loading or status message active
	var left string
	switch {
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	case m.loading():
		statusText := "Loading..."
		if m.Page == PageAdd {
			statusText = "Uploading..."
		}
		left = styles.RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render(statusText)
	}

	// Center section: page-specific hints
	center := m.pageHints()

	// Right side: "? help" hint
	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		// Not enough space - just left + right
		gap := m.Width - leftWidth - rightWidth
		if gap < 0 {
			gap = 0
		}
		return left + strings.Repeat(" ", gap) + right
	}

	// Center the hints in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
PAGES                           WORDS
  1-5        Jump to page          p/Space  Pronounce
  Tab        Next page             d        Toggle details
  S-Tab      Previous page         m        Load more
                                   x        Delete (y/n)
NAVIGATION                         r        New random words
  j/k        Up/down
  g/G        First/last item    GROUPS
  Ctrl+u/d   Scroll half page      Enter    Expand/collapse
  /          Search                E/C      Expand/collapse all
  Esc        Clear search
                                ADD WORDS
OTHER                              i        Edit
  q          Quit                  Ctrl+s   Add words
  ?          This help             Ctrl+e   Insert example
                                   Esc      Leave editor

Press ? or Esc to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}

// renderAlert renders a blocking message, dismissed by any key
func (m Model) renderAlert() string {
	body := styles.ErrorStyle.Render(m.Alert) + "\n\n" +
		styles.DimStyle.Render("Press any key to continue")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(body))
}
