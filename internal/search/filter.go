package search

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/vocab/internal/domain"
)

// Mode selects how a search term is matched against words
type Mode string

const (
	// ModeSubstring keeps words containing the term, case-insensitively
	ModeSubstring Mode = "substring"
	// ModeFuzzy keeps words the term fuzzily matches, best match first
	ModeFuzzy Mode = "fuzzy"
)

// ParseMode maps a config value to a Mode, defaulting to substring
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == ModeFuzzy {
		return ModeFuzzy
	}
	return ModeSubstring
}

// Matches reports whether word contains term, ignoring case
func Matches(word, term string) bool {
	return strings.Contains(strings.ToLower(word), strings.ToLower(term))
}

// FilterEntries keeps entries whose word contains term. Order is kept and
// an empty term keeps everything.
func FilterEntries(entries []domain.Entry, term string) []domain.Entry {
	if term == "" {
		return entries
	}
	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e.Word, term) {
			out = append(out, e)
		}
	}
	return out
}

// entryIndex implements sahilm/fuzzy.Source over entry words
type entryIndex struct {
	entries []domain.Entry
	lower   []string
}

func newEntryIndex(entries []domain.Entry) *entryIndex {
	lower := make([]string, len(entries))
	for i, e := range entries {
		lower[i] = strings.ToLower(e.Word)
	}
	return &entryIndex{entries: entries, lower: lower}
}

func (idx *entryIndex) String(i int) string { return idx.lower[i] }
func (idx *entryIndex) Len() int            { return len(idx.entries) }

// Filter applies term with the given mode
func Filter(entries []domain.Entry, term string, mode Mode) []domain.Entry {
	if mode != ModeFuzzy || term == "" {
		return FilterEntries(entries, term)
	}

	matches := fuzzy.FindFrom(strings.ToLower(term), newEntryIndex(entries))
	out := make([]domain.Entry, len(matches))
	for i, m := range matches {
		out[i] = entries[m.Index]
	}
	return out
}

// FilterGroups keeps groups whose name matches term or that have a member
// whose word matches. Member lists are kept whole.
func FilterGroups(groups domain.Groups, term string) domain.Groups {
	if term == "" {
		return groups
	}
	out := make(domain.Groups, 0, len(groups))
	for _, g := range groups {
		if Matches(g.Name, term) || hasMatchingMember(g, term) {
			out = append(out, g)
		}
	}
	return out
}

func hasMatchingMember(g domain.Group, term string) bool {
	for _, e := range g.Entries {
		if Matches(e.Word, term) {
			return true
		}
	}
	return false
}

// Suggest returns up to max words close to term, nearest first.
// Used when a search finds nothing.
func Suggest(term string, entries []domain.Entry, max int) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || max <= 0 {
		return nil
	}

	words := uniqueWords(entries)
	threshold := len([]rune(term))/3 + 1

	type candidate struct {
		word     string
		distance int
	}
	seen := make(map[string]bool)
	var candidates []candidate

	// Words the term is a scattered subsequence of
	for _, r := range lfuzzy.RankFindNormalizedFold(term, words) {
		seen[r.Target] = true
		candidates = append(candidates, candidate{r.Target, r.Distance})
	}

	// Plain typos
	for _, w := range words {
		if seen[w] {
			continue
		}
		if d := lfuzzy.LevenshteinDistance(term, strings.ToLower(w)); d <= threshold {
			candidates = append(candidates, candidate{w, d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].word < candidates[j].word
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

func uniqueWords(entries []domain.Entry) []string {
	seen := make(map[string]bool, len(entries))
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Word == "" || seen[e.Word] {
			continue
		}
		seen[e.Word] = true
		words = append(words, e.Word)
	}
	return words
}
