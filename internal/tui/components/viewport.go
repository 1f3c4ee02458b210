package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mmcdole/vocab/internal/tui/styles"
)

// Scroll indicators ("↑ more" and "↓ more") each take 1 line
const ScrollIndicatorLines = 2

// scrollOffset returns the first item to render so the item at cursor fits
// within avail lines. Items may span several lines.
func scrollOffset(heights []int, cursor, offset, avail int) int {
	if len(heights) == 0 || cursor < 0 {
		return 0
	}
	if cursor >= len(heights) {
		cursor = len(heights) - 1
	}
	if cursor < offset {
		return cursor
	}
	if offset >= len(heights) {
		offset = len(heights) - 1
	}

	used := 0
	for i := offset; i <= cursor; i++ {
		used += heights[i]
	}
	for used > avail && offset < cursor {
		used -= heights[offset]
		offset++
	}
	return offset
}

// renderWindow joins item blocks from offset until avail lines are used.
// The last block is cut when it does not fit. It reports the index past
// the last item shown in full.
func renderWindow(blocks [][]string, offset, avail int) ([]string, int) {
	var lines []string
	end := offset
	for i := offset; i < len(blocks); i++ {
		room := avail - len(lines)
		if room <= 0 {
			break
		}
		if len(blocks[i]) > room {
			lines = append(lines, blocks[i][:room]...)
			break
		}
		lines = append(lines, blocks[i]...)
		end = i + 1
	}
	return lines, end
}

// newFilterInput creates the "/ " filter prompt shared by list components
func newFilterInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	return ti
}

// padLines pads or cuts lines to exactly n entries
func padLines(lines []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

func indent(lines []string, prefix string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = prefix + l
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
