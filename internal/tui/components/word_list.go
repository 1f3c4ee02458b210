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
	"github.com/mmcdole/vocab/internal/vocabulary"
	"github.com/muesli/reflow/wordwrap"
)

// WordListKind selects what a word list shows and which actions it offers
type WordListKind int

const (
	// WordListAll is the paginated collection; entries can be deleted
	WordListAll WordListKind = iota
	// WordListRandom is a numbered sample that is replaced wholesale
	WordListRandom
	// WordListTones is the tone-tagged set; read-only
	WordListTones
)

// Header and footer lines around the list body
const (
	wordListHeaderLines = 4
	wordListFooterLines = 1
)

// maxSuggestions caps the "did you mean" line
const maxSuggestions = 3

// WordList renders a scrollable list of vocabulary entries with a
// client-side filter. It backs the Words, Random and Tones pages.
type WordList struct {
	kind       WordListKind
	collection vocabulary.Collection
	visible    []domain.Entry
	searchMode search.Mode

	// Selection
	cursor int
	offset int

	// Dimensions
	width  int
	height int

	showDetails bool
	speaking    string
	confirm     string

	// Loading state
	loading      bool
	loadingMore  bool
	spinnerFrame int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	suggestions  []string
}

// NewWordList creates an empty word list
func NewWordList(kind WordListKind, mode search.Mode, showDetails bool) *WordList {
	return &WordList{
		kind:        kind,
		searchMode:  mode,
		showDetails: showDetails,
		filterInput: newFilterInput("search words..."),
	}
}

func (l *WordList) Kind() WordListKind { return l.kind }

// Title is the page heading
func (l *WordList) Title() string {
	switch l.kind {
	case WordListRandom:
		return "Random 10 Words"
	case WordListTones:
		return "Tones"
	default:
		return "All Words"
	}
}

// Subtitle is the line under the heading
func (l *WordList) Subtitle() string {
	switch l.kind {
	case WordListRandom:
		return "Practice with a random selection"
	case WordListTones:
		return fmt.Sprintf("Special collection of tone-related vocabulary (%d words)", l.collection.Len())
	default:
		return fmt.Sprintf("Browse your complete vocabulary collection (%d words)", l.collection.Pagination().Total)
	}
}

// EmptyText is shown when nothing is visible
func (l *WordList) EmptyText() string {
	if l.SearchTerm() != "" {
		return "No words found matching your search"
	}
	switch l.kind {
	case WordListRandom:
		return "No words available. Add some words first!"
	case WordListTones:
		return "No tones available"
	default:
		return "No words yet. Start adding some!"
	}
}

// === Data ===

// SetPage replaces the list with the first page
func (l *WordList) SetPage(page domain.Page) {
	l.loading = false
	l.collection.Reset(page)
	l.cursor, l.offset = 0, 0
	l.applyFilter()
}

// AppendPage adds the next page below the current entries
func (l *WordList) AppendPage(page domain.Page) {
	l.loadingMore = false
	l.collection.Append(page)
	l.applyFilter()
}

// SetEntries replaces the list with an unpaginated set
func (l *WordList) SetEntries(entries []domain.Entry) {
	l.loading = false
	l.collection.Replace(entries)
	l.cursor, l.offset = 0, 0
	l.applyFilter()
}

// Remove drops one entry after a successful delete
func (l *WordList) Remove(word string) bool {
	if !l.collection.Remove(word) {
		return false
	}
	l.applyFilter()
	return true
}

func (l *WordList) Collection() *vocabulary.Collection { return &l.collection }

// Visible returns the entries that pass the current filter
func (l *WordList) Visible() []domain.Entry { return l.visible }

func (l *WordList) Suggestions() []string { return l.suggestions }

func (l *WordList) SetLoading(loading bool) { l.loading = loading }
func (l *WordList) IsLoading() bool         { return l.loading }

func (l *WordList) SetLoadingMore(loading bool) { l.loadingMore = loading }
func (l *WordList) IsLoadingMore() bool         { return l.loadingMore }

func (l *WordList) SetSpinnerFrame(frame int) { l.spinnerFrame = frame }

// SetSpeaking marks the word currently being pronounced ("" for none)
func (l *WordList) SetSpeaking(word string) { l.speaking = word }

// ToggleDetails switches between full cards and one line per word
func (l *WordList) ToggleDetails() {
	l.showDetails = !l.showDetails
	l.ensureVisible()
}

func (l *WordList) ShowDetails() bool { return l.showDetails }

// Selected returns the entry under the cursor
func (l *WordList) Selected() (domain.Entry, bool) {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return domain.Entry{}, false
	}
	return l.visible[l.cursor], true
}

// CanLoadMore reports whether the "load more" action applies right now
func (l *WordList) CanLoadMore() bool {
	return l.kind == WordListAll && !l.loadingMore && l.collection.CanLoadMore(l.SearchTerm())
}

// === Delete confirmation ===

// Confirming returns the word awaiting delete confirmation
func (l *WordList) Confirming() string { return l.confirm }

// AskDelete asks to confirm deleting the selected entry
func (l *WordList) AskDelete() (string, bool) {
	if l.kind != WordListAll {
		return "", false
	}
	e, ok := l.Selected()
	if !ok {
		return "", false
	}
	l.confirm = e.Word
	return e.Word, true
}

func (l *WordList) CancelDelete() { l.confirm = "" }

// === Filter ===

// SearchTerm returns the active filter text
func (l *WordList) SearchTerm() string {
	if !l.filterActive {
		return ""
	}
	return strings.TrimSpace(l.filterInput.Value())
}

// IsFiltering returns true if filter mode is active
func (l *WordList) IsFiltering() bool { return l.filterActive }

// IsFilterTyping returns true if filter is active AND input is focused
func (l *WordList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// StartFilter activates the filter input
func (l *WordList) StartFilter() tea.Cmd {
	if l.kind == WordListRandom {
		return nil
	}
	l.filterActive = true
	return l.filterInput.Focus()
}

// ClearFilter deactivates the filter and shows all entries
func (l *WordList) ClearFilter() {
	l.filterActive = false
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.cursor, l.offset = 0, 0
	l.applyFilter()
}

func (l *WordList) applyFilter() {
	term := l.SearchTerm()
	l.visible = search.Filter(l.collection.Entries(), term, l.searchMode)
	l.suggestions = nil
	if term != "" && len(l.visible) == 0 {
		l.suggestions = search.Suggest(term, l.collection.Entries(), maxSuggestions)
	}
	if l.cursor >= len(l.visible) {
		l.cursor = len(l.visible) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

// === Update ===

// Update handles navigation and filter keys. Page actions such as delete or
// speak are left to the caller.
func (l *WordList) Update(msg tea.Msg) tea.Cmd {
	if l.IsFilterTyping() {
		if km, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(km, ListKeys.Escape):
				l.ClearFilter()
				return nil
			case key.Matches(km, ListKeys.Accept):
				// Keep the term, return to navigation
				l.filterInput.Blur()
				return nil
			case km.String() == "backspace" && l.filterInput.Value() == "":
				l.ClearFilter()
				return nil
			}
		}

		var cmd tea.Cmd
		before := l.filterInput.Value()
		l.filterInput, cmd = l.filterInput.Update(msg)
		if l.filterInput.Value() != before {
			l.cursor, l.offset = 0, 0
			l.applyFilter()
		}
		return cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(km, ListKeys.Filter):
		return l.StartFilter()
	case key.Matches(km, ListKeys.Escape):
		if l.filterActive {
			l.ClearFilter()
		}
		return nil
	}

	l.navigate(km)
	return nil
}

func (l *WordList) navigate(km tea.KeyMsg) {
	count := len(l.visible)
	if count == 0 {
		return
	}

	half := max(1, l.bodyHeight()/2)
	if l.showDetails {
		// Cards are several lines tall
		half = max(1, half/4)
	}

	switch {
	case key.Matches(km, ListKeys.Down):
		if l.cursor < count-1 {
			l.cursor++
		}
	case key.Matches(km, ListKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(km, ListKeys.Home):
		l.cursor = 0
		l.offset = 0
	case key.Matches(km, ListKeys.End):
		l.cursor = count - 1
	case key.Matches(km, ListKeys.HalfDown):
		l.cursor = min(l.cursor+half, count-1)
	case key.Matches(km, ListKeys.HalfUp):
		l.cursor = max(l.cursor-half, 0)
	default:
		return
	}
	l.ensureVisible()
}

// === Layout ===

func (l *WordList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.filterInput.Width = max(10, width-4)
	l.ensureVisible()
}

func (l *WordList) bodyHeight() int {
	h := l.height - wordListHeaderLines - wordListFooterLines - ScrollIndicatorLines
	if h < 1 {
		h = 1
	}
	return h
}

func (l *WordList) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if l.height <= 0 || len(l.visible) == 0 {
		l.offset = 0
		return
	}
	heights := make([]int, len(l.visible))
	for i, e := range l.visible {
		heights[i] = len(l.entryBlock(i, e, false))
	}
	l.offset = scrollOffset(heights, l.cursor, l.offset, l.bodyHeight())
}

// === Rendering ===

func (l *WordList) View() string {
	lines := []string{
		styles.TitleStyle.Render(l.Title()),
		styles.SubtitleStyle.Render(l.Subtitle()),
		l.renderFilterLine(),
		"",
	}

	body := l.bodyHeight() + ScrollIndicatorLines
	lines = append(lines, padLines(l.renderBody(), body)...)
	lines = append(lines, l.renderFooter())

	return strings.Join(lines, "\n")
}

func (l *WordList) renderFilterLine() string {
	if l.filterActive {
		return l.filterInput.View()
	}
	if l.kind == WordListRandom {
		return styles.HelpHint("r", "Get New Random Words")
	}
	return styles.DimStyle.Render("/ search")
}

func (l *WordList) renderBody() []string {
	if l.loading && !l.collection.Loaded() {
		return []string{"", styles.RenderSpinner(l.spinnerFrame) + styles.DimStyle.Render(" Loading...")}
	}

	if len(l.visible) == 0 {
		lines := []string{"", styles.DimStyle.Render(l.EmptyText())}
		if len(l.suggestions) > 0 {
			lines = append(lines, styles.DimStyle.Render("Did you mean: ")+
				styles.AccentStyle.Render(strings.Join(l.suggestions, ", "))+
				styles.DimStyle.Render("?"))
		}
		return lines
	}

	blocks := make([][]string, len(l.visible))
	for i, e := range l.visible {
		blocks[i] = l.entryBlock(i, e, i == l.cursor)
	}
	window, end := renderWindow(blocks, l.offset, l.bodyHeight())

	// ALWAYS reserve space for indicators to prevent layout shifts
	header := ""
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := ""
	if end < len(l.visible) {
		footer = styles.DimStyle.Render("↓ more")
	}

	lines := append([]string{header}, padLines(window, l.bodyHeight())...)
	return append(lines, footer)
}

func (l *WordList) renderFooter() string {
	switch {
	case l.confirm != "":
		return styles.ErrorStyle.Render(fmt.Sprintf("Delete %q? ", l.confirm)) +
			styles.HelpHint("y", "yes", "n", "no")
	case l.loadingMore:
		return styles.RenderSpinner(l.spinnerFrame) + styles.DimStyle.Render(" Loading...")
	case l.loading:
		return styles.RenderSpinner(l.spinnerFrame) + styles.DimStyle.Render(" Refreshing...")
	case l.CanLoadMore():
		return styles.HelpHint("m", l.collection.LoadMoreLabel())
	}
	return ""
}

// entryBlock renders one entry as a block of lines
func (l *WordList) entryBlock(i int, e domain.Entry, selected bool) []string {
	width := l.width
	if width < 20 {
		width = 20
	}

	marker := "  "
	wordStyle := styles.WordStyle
	if selected {
		marker = styles.AccentStyle.Render(styles.CursorChar) + " "
		wordStyle = styles.SelectedWordStyle
	}

	head := marker
	if l.kind == WordListRandom {
		head += styles.DimStyle.Render(fmt.Sprintf("%d. ", i+1))
	}
	head += wordStyle.Render(e.Word)
	if e.Word == l.speaking {
		head += " " + styles.AccentStyle.Render(styles.SpeakingChar)
	}
	if e.GroupName != "" {
		head += " " + styles.DimBadgeStyle.Render(e.GroupName)
	}

	if !l.showDetails {
		room := width - lipgloss.Width(head) - 2
		if e.Meaning != "" && room > 3 {
			head += "  " + styles.MeaningStyle.Render(styles.Truncate(e.Meaning, room))
		}
		return []string{head}
	}

	textWidth := width - 4
	lines := []string{head}
	if e.Meaning != "" {
		lines = append(lines, wrapStyled(styles.MeaningStyle, e.Meaning, textWidth)...)
	}
	if e.Sentence != "" {
		lines = append(lines, wrapStyled(styles.SentenceStyle, `"`+e.Sentence+`"`, textWidth)...)
	}
	if e.HasSynonyms() {
		lines = append(lines, wrapStyled(styles.SynonymStyle, "Synonyms: "+strings.Join(e.Synonyms, ", "), textWidth)...)
	}
	return append(lines, "")
}

// wrapStyled word-wraps text and styles each line, indented under the word
func wrapStyled(style lipgloss.Style, text string, width int) []string {
	wrapped := splitLines(wordwrap.String(text, width))
	for i, line := range wrapped {
		wrapped[i] = style.Render(line)
	}
	return indent(wrapped, "    ")
}
