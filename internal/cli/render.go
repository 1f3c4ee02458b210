package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/tui/styles"
)

const (
	defaultWidth = 80
	maxWidth     = 100
)

// terminalFd returns the file descriptor of v when v is a terminal
func terminalFd(v any) (int, bool) {
	f, ok := v.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// outputWidth is the wrap width for w, capped for readability
func outputWidth(w io.Writer) int {
	fd, ok := terminalFd(w)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return min(width, maxWidth)
}

// printHeader prints a title with a dim subtitle below it
func printHeader(w io.Writer, title, subtitle string) {
	fmt.Fprintln(w, styles.TitleStyle.Render(title))
	if subtitle != "" {
		fmt.Fprintln(w, styles.SubtitleStyle.Render(subtitle))
	}
	fmt.Fprintln(w)
}

// printEntries prints entries as wrapped cards. numbered prefixes 1..N.
func printEntries(w io.Writer, entries []domain.Entry, numbered bool) {
	width := outputWidth(w)
	for i, e := range entries {
		prefix := ""
		if numbered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		fmt.Fprintln(w, prefix+styles.WordStyle.Render(e.Word))
		for _, line := range entryDetails(e, width-4) {
			fmt.Fprintln(w, line)
		}
		if i < len(entries)-1 {
			fmt.Fprintln(w)
		}
	}
}

// entryDetails renders the meaning, sentence and synonyms of e, indented
func entryDetails(e domain.Entry, width int) []string {
	if width < 20 {
		width = 20
	}
	var parts []string
	if e.Meaning != "" {
		parts = append(parts, styles.MeaningStyle.Render(wordwrap.String(e.Meaning, width)))
	}
	if e.Sentence != "" {
		parts = append(parts, styles.SentenceStyle.Render(wordwrap.String(`"`+e.Sentence+`"`, width)))
	}
	if e.HasSynonyms() {
		parts = append(parts, styles.SynonymStyle.Render(wordwrap.String("Synonyms: "+strings.Join(e.Synonyms, ", "), width)))
	}
	if len(parts) == 0 {
		return nil
	}
	return strings.Split(indent.String(strings.Join(parts, "\n"), 2), "\n")
}

// printEntryTable prints one row per entry with the meaning truncated
func printEntryTable(w io.Writer, entries []domain.Entry) {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Word, e.Meaning}
	}
	fmt.Fprintln(w, newTable(outputWidth(w), "Word", "Meaning").Rows(rows...).String())
}

// printKeyValues prints a two column table without headers
func printKeyValues(w io.Writer, rows [][]string) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styles.DimStyle
			}
			return lipgloss.NewStyle()
		}).
		Rows(rows...)
	fmt.Fprintln(w, t.String())
}

func newTable(width int, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.DimGray)).
		Width(width).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Foreground(styles.Indigo).Bold(true)
			case col == 0:
				return style.Bold(true)
			}
			return style.Foreground(styles.LightGray)
		})
}

// printNoMatches prints the empty search result with close words, if any
func printNoMatches(w io.Writer, message string, suggestions []string) {
	fmt.Fprintln(w, styles.DimStyle.Render(message))
	if len(suggestions) > 0 {
		fmt.Fprintln(w, styles.DimStyle.Render("Did you mean: ")+styles.AccentStyle.Render(strings.Join(suggestions, ", "))+styles.DimStyle.Render("?"))
	}
}
