package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/vocab/internal/domain"
)

func page(n, totalPages, total int, words ...string) domain.Page {
	entries := make([]domain.Entry, len(words))
	for i, w := range words {
		entries[i] = domain.Entry{Word: w, Meaning: "meaning of " + w}
	}
	return domain.Page{
		Entries: entries,
		Pagination: domain.Pagination{
			Page: n, Limit: 50, Total: total, TotalPages: totalPages, HasMore: n < totalPages,
		},
	}
}

func TestCollection_AppendPages(t *testing.T) {
	var c Collection
	assert.False(t, c.Loaded())

	c.Reset(page(1, 2, 4, "a", "b"))
	assert.True(t, c.CanLoadMore(""))
	assert.False(t, c.CanLoadMore("a"), "load more is hidden while searching")
	assert.Equal(t, 2, c.NextPage())
	assert.Equal(t, "Load More (1 / 2)", c.LoadMoreLabel())

	c.Append(page(2, 2, 4, "c", "d"))
	assert.Equal(t, 4, c.Len())
	assert.False(t, c.CanLoadMore(""))
	assert.Equal(t, "d", c.Entries()[3].Word)
}

func TestCollection_Remove(t *testing.T) {
	var c Collection
	c.Reset(page(1, 1, 3, "alpha", "beta", "gamma"))
	before := append([]domain.Entry(nil), c.Entries()...)

	assert.True(t, c.Remove("beta"))

	assert.Equal(t, 2, c.Pagination().Total)
	assert.Equal(t, []domain.Entry{before[0], before[2]}, c.Entries())

	assert.False(t, c.Remove("missing"))
	assert.Equal(t, 2, c.Pagination().Total)
}

func TestCollection_RemoveDoesNotAliasPage(t *testing.T) {
	p := page(1, 1, 2, "x", "y")
	var c Collection
	c.Reset(p)
	c.Remove("x")

	assert.Equal(t, "x", p.Entries[0].Word)
}

func TestCollection_Replace(t *testing.T) {
	var c Collection
	c.Reset(page(1, 3, 150, "a"))
	c.Replace([]domain.Entry{{Word: "r1"}, {Word: "r2"}})

	assert.Equal(t, 2, c.Len())
	assert.False(t, c.CanLoadMore(""))
	assert.Equal(t, 2, c.Pagination().Total)
}
