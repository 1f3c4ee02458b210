package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(l interface{ Update(tea.Msg) tea.Cmd }, text string) {
	for _, r := range text {
		l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func testPage(page, totalPages, total int, hasMore bool, words ...string) domain.Page {
	entries := make([]domain.Entry, len(words))
	for i, w := range words {
		entries[i] = domain.Entry{Word: w, Meaning: "meaning of " + w}
	}
	return domain.Page{
		Entries: entries,
		Pagination: domain.Pagination{
			Page: page, Limit: 50, Total: total, TotalPages: totalPages, HasMore: hasMore,
		},
	}
}

func visibleWords(l *WordList) []string {
	var out []string
	for _, e := range l.Visible() {
		out = append(out, e.Word)
	}
	return out
}

func TestWordList_HeaderAndLoadMore(t *testing.T) {
	l := NewWordList(WordListAll, search.ModeSubstring, true)
	l.SetSize(80, 30)
	l.SetPage(testPage(1, 3, 120, true, "apple", "banana"))

	assert.Equal(t, "Browse your complete vocabulary collection (120 words)", l.Subtitle())
	assert.True(t, l.CanLoadMore())
	assert.Contains(t, l.View(), "Load More (1 / 3)")

	l.SetLoadingMore(true)
	assert.False(t, l.CanLoadMore())

	l.AppendPage(testPage(2, 3, 120, true, "cherry"))
	assert.False(t, l.IsLoadingMore())
	assert.Equal(t, []string{"apple", "banana", "cherry"}, visibleWords(l))
	assert.Contains(t, l.View(), "Load More (2 / 3)")

	l.AppendPage(testPage(3, 3, 120, false, "date"))
	assert.False(t, l.CanLoadMore())
}

func TestWordList_FilterHidesLoadMore(t *testing.T) {
	l := NewWordList(WordListAll, search.ModeSubstring, false)
	l.SetSize(80, 30)
	l.SetPage(testPage(1, 2, 4, true, "Apple", "banana", "pineapple"))

	l.Update(keyMsg("/"))
	require.True(t, l.IsFilterTyping())
	typeText(l, "APP")

	assert.Equal(t, []string{"Apple", "pineapple"}, visibleWords(l))
	assert.False(t, l.CanLoadMore())

	// enter keeps the term and returns to navigation
	l.Update(keyMsg("enter"))
	assert.False(t, l.IsFilterTyping())
	assert.True(t, l.IsFiltering())
	assert.Equal(t, "APP", l.SearchTerm())

	l.Update(keyMsg("esc"))
	assert.False(t, l.IsFiltering())
	assert.Len(t, l.Visible(), 3)
	assert.True(t, l.CanLoadMore())
}

func TestWordList_BackspaceOnEmptyFilterClears(t *testing.T) {
	l := NewWordList(WordListTones, search.ModeSubstring, false)
	l.SetEntries(testPage(1, 1, 1, false, "calm").Entries)

	l.Update(keyMsg("/"))
	require.True(t, l.IsFilterTyping())
	l.Update(keyMsg("backspace"))
	assert.False(t, l.IsFiltering())
}

func TestWordList_NoMatchShowsSuggestions(t *testing.T) {
	l := NewWordList(WordListAll, search.ModeSubstring, false)
	l.SetSize(80, 30)
	l.SetPage(testPage(1, 1, 2, false, "ephemeral", "eloquent"))

	l.StartFilter()
	typeText(l, "ephemrl")

	assert.Empty(t, l.Visible())
	assert.Contains(t, l.Suggestions(), "ephemeral")
	view := l.View()
	assert.Contains(t, view, "No words found matching your search")
	assert.Contains(t, view, "Did you mean")
}

func TestWordList_EmptyTexts(t *testing.T) {
	tests := []struct {
		kind WordListKind
		want string
	}{
		{WordListAll, "No words yet. Start adding some!"},
		{WordListRandom, "No words available. Add some words first!"},
		{WordListTones, "No tones available"},
	}
	for _, tt := range tests {
		l := NewWordList(tt.kind, search.ModeSubstring, true)
		l.SetSize(80, 20)
		l.SetEntries(nil)
		assert.Equal(t, tt.want, l.EmptyText())
		assert.Contains(t, l.View(), tt.want)
	}
}

func TestWordList_RandomIsNumberedAndUnfilterable(t *testing.T) {
	l := NewWordList(WordListRandom, search.ModeSubstring, false)
	l.SetSize(80, 20)
	l.SetEntries(testPage(1, 1, 2, false, "alpha", "beta").Entries)

	assert.Nil(t, l.StartFilter())
	assert.False(t, l.IsFiltering())

	view := l.View()
	assert.Contains(t, view, "1.")
	assert.Contains(t, view, "2.")
	assert.Contains(t, view, "Random 10 Words")
}

func TestWordList_DeleteFlow(t *testing.T) {
	l := NewWordList(WordListAll, search.ModeSubstring, false)
	l.SetSize(80, 20)
	l.SetPage(testPage(1, 1, 3, false, "a", "b", "c"))

	l.Update(keyMsg("j"))
	word, ok := l.AskDelete()
	require.True(t, ok)
	assert.Equal(t, "b", word)
	assert.Equal(t, "b", l.Confirming())
	assert.Contains(t, l.View(), `Delete "b"?`)

	l.CancelDelete()
	assert.Empty(t, l.Confirming())

	assert.True(t, l.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, visibleWords(l))
	assert.Equal(t, 2, l.Collection().Pagination().Total)

	sel, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "c", sel.Word)
}

func TestWordList_TonesCannotDelete(t *testing.T) {
	l := NewWordList(WordListTones, search.ModeSubstring, false)
	l.SetEntries(testPage(1, 1, 1, false, "calm").Entries)
	_, ok := l.AskDelete()
	assert.False(t, ok)
}

func TestWordList_Navigation(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = string(rune('a'+i%26)) + "word"
	}
	l := NewWordList(WordListAll, search.ModeSubstring, false)
	l.SetSize(80, 20)
	l.SetPage(testPage(1, 1, 40, false, words...))

	l.Update(keyMsg("G"))
	sel, _ := l.Selected()
	assert.Equal(t, words[39], sel.Word)
	assert.Greater(t, l.offset, 0)

	l.Update(keyMsg("g"))
	sel, _ = l.Selected()
	assert.Equal(t, words[0], sel.Word)
	assert.Equal(t, 0, l.offset)

	l.Update(keyMsg("ctrl+d"))
	assert.Greater(t, l.cursor, 0)
}

func TestWordList_SpeakingMarkAndDetails(t *testing.T) {
	l := NewWordList(WordListAll, search.ModeSubstring, true)
	l.SetSize(80, 20)
	page := testPage(1, 1, 1, false, "serene")
	page.Entries[0].Sentence = "The lake was serene."
	page.Entries[0].Synonyms = []string{"calm", "tranquil"}
	l.SetPage(page)

	l.SetSpeaking("serene")
	view := l.View()
	assert.Contains(t, view, "♪")
	assert.Contains(t, view, "Synonyms: calm, tranquil")
	assert.Contains(t, view, "The lake was serene.")

	l.ToggleDetails()
	assert.False(t, l.ShowDetails())
	assert.NotContains(t, l.View(), "Synonyms")
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name    string
		heights []int
		cursor  int
		offset  int
		avail   int
		want    int
	}{
		{"fits", []int{1, 1, 1}, 2, 0, 5, 0},
		{"cursor above", []int{1, 1, 1}, 0, 2, 5, 0},
		{"scroll down", []int{1, 1, 1, 1}, 3, 0, 2, 2},
		{"tall items", []int{3, 3, 3}, 2, 0, 6, 1},
		{"taller than view", []int{10, 10}, 1, 0, 4, 1},
		{"empty", nil, 0, 3, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scrollOffset(tt.heights, tt.cursor, tt.offset, tt.avail))
		})
	}
}

func TestRenderWindow(t *testing.T) {
	blocks := [][]string{{"a1", "a2"}, {"b1", "b2"}, {"c1"}}

	lines, end := renderWindow(blocks, 0, 3)
	assert.Equal(t, []string{"a1", "a2", "b1"}, lines)
	assert.Equal(t, 1, end)

	lines, end = renderWindow(blocks, 1, 5)
	assert.Equal(t, []string{"b1", "b2", "c1"}, lines)
	assert.Equal(t, 3, end)
}
