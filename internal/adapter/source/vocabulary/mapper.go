package vocabulary

import (
	"strings"

	"github.com/samber/lo"

	"github.com/mmcdole/vocab/internal/domain"
)

// MapEntries converts backend entries to domain entries, dropping
// records without a word since word is the only key the client has
func MapEntries(dtos []EntryDTO) []domain.Entry {
	valid := lo.Filter(dtos, func(d EntryDTO, _ int) bool {
		return strings.TrimSpace(d.Word) != ""
	})
	return lo.Map(valid, func(d EntryDTO, _ int) domain.Entry {
		return mapEntry(d)
	})
}

func mapEntry(d EntryDTO) domain.Entry {
	synonyms := lo.Compact(lo.Map(d.Synonyms, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	if len(synonyms) == 0 {
		synonyms = nil
	}
	return domain.Entry{
		Word:      d.Word,
		Meaning:   d.Meaning,
		Synonyms:  synonyms,
		Sentence:  d.Sentence,
		GroupName: d.GroupName,
	}
}

// MapPagination converts the list cursor
func MapPagination(p PaginationDTO) domain.Pagination {
	return domain.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasMore:    p.HasMore,
	}
}

// MapPage converts a list response
func MapPage(r ListResponse) domain.Page {
	return domain.Page{
		Entries:    MapEntries(r.Data),
		Pagination: MapPagination(r.Pagination),
	}
}

// MapGroups converts the groups object, keeping its order
func MapGroups(r GroupsResponse) domain.Groups {
	return lo.Map(r, func(g GroupDTO, _ int) domain.Group {
		return domain.Group{Name: g.Name, Entries: MapEntries(g.Entries)}
	})
}

// MapBulkResult converts the bulk upload bookkeeping
func MapBulkResult(r BulkResponse) domain.BulkResult {
	return domain.BulkResult{
		TotalProcessed: r.TotalProcessed,
		TotalWords:     r.TotalWords,
		HasMore:        r.HasMore,
		NextOffset:     r.NextOffset,
	}
}
