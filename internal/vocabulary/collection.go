package vocabulary

import (
	"fmt"

	"github.com/mmcdole/vocab/internal/domain"
)

// Collection holds the fetched entries of a list view and its pagination.
// Pages are appended in the order they arrive; no deduplication.
type Collection struct {
	entries    []domain.Entry
	pagination domain.Pagination
	loaded     bool
}

// Reset replaces the collection with one page
func (c *Collection) Reset(page domain.Page) {
	c.entries = append([]domain.Entry(nil), page.Entries...)
	c.pagination = page.Pagination
	c.loaded = true
}

// Replace sets unpaginated entries, as for random samples and tones
func (c *Collection) Replace(entries []domain.Entry) {
	c.Reset(domain.Page{Entries: entries, Pagination: domain.Pagination{Total: len(entries)}})
}

// Append adds a following page and takes over its pagination
func (c *Collection) Append(page domain.Page) {
	c.entries = append(c.entries, page.Entries...)
	c.pagination = page.Pagination
	c.loaded = true
}

// Remove drops the entry with the given word and decrements the total by one.
// It reports whether an entry was removed.
func (c *Collection) Remove(word string) bool {
	for i, e := range c.entries {
		if e.Word != word {
			continue
		}
		c.entries = append(c.entries[:i:i], c.entries[i+1:]...)
		c.pagination.Total--
		return true
	}
	return false
}

func (c *Collection) Entries() []domain.Entry       { return c.entries }
func (c *Collection) Len() int                      { return len(c.entries) }
func (c *Collection) Pagination() domain.Pagination { return c.pagination }
func (c *Collection) Loaded() bool                  { return c.loaded }

// NextPage is the page number "load more" requests
func (c *Collection) NextPage() int {
	return c.pagination.Page + 1
}

// CanLoadMore reports whether "load more" is offered. It is hidden while a
// search term is active.
func (c *Collection) CanLoadMore(term string) bool {
	return term == "" && c.pagination.HasMore
}

// LoadMoreLabel is the text of the "load more" action
func (c *Collection) LoadMoreLabel() string {
	return fmt.Sprintf("Load More (%d / %d)", c.pagination.Page, c.pagination.TotalPages)
}
