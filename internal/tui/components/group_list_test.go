package components

import (
	"testing"

	"github.com/mmcdole/vocab/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroups() domain.Groups {
	return domain.Groups{
		{Name: "Emotions", Entries: []domain.Entry{{Word: "elated"}, {Word: "morose"}}},
		{Name: "Speech", Entries: []domain.Entry{{Word: "eloquent"}}},
		{Name: "Time", Entries: []domain.Entry{{Word: "ephemeral"}, {Word: "perennial"}, {Word: "transient"}}},
	}
}

func TestGroupList_LoadExpandsAll(t *testing.T) {
	g := NewGroupList()
	g.SetSize(80, 30)
	g.SetGroups(testGroups(), false)

	for _, grp := range testGroups() {
		assert.True(t, g.IsExpanded(grp.Name), grp.Name)
	}
	// 3 headers + 6 members
	assert.Len(t, g.rows, 9)

	view := g.View()
	assert.Contains(t, view, "Explore 6 words organized into 3 meaningful groups")
	assert.Contains(t, view, "Total Groups 3")
	assert.Contains(t, view, "Total Words 6")
	assert.Contains(t, view, "Avg per Group 2")
	assert.Contains(t, view, "1 word")
	assert.Contains(t, view, "3 words")
}

func TestGroupList_ToggleKeepsOrder(t *testing.T) {
	g := NewGroupList()
	g.SetSize(80, 30)
	g.SetGroups(testGroups(), false)

	// Cursor on the "Emotions" header
	g.Update(keyMsg("enter"))
	assert.False(t, g.IsExpanded("Emotions"))
	assert.True(t, g.IsExpanded("Speech"))
	assert.Len(t, g.rows, 7)

	name, ok := g.SelectedGroup()
	require.True(t, ok)
	assert.Equal(t, "Emotions", name)

	g.Update(keyMsg("enter"))
	assert.True(t, g.IsExpanded("Emotions"))
	assert.Len(t, g.rows, 9)
}

func TestGroupList_ToggleFromMemberCollapsesItsGroup(t *testing.T) {
	g := NewGroupList()
	g.SetSize(80, 30)
	g.SetGroups(testGroups(), false)

	// Speech header is row 3, its member row 4
	for i := 0; i < 4; i++ {
		g.Update(keyMsg("j"))
	}
	e, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "eloquent", e.Word)

	g.Toggle()
	assert.False(t, g.IsExpanded("Speech"))
	name, _ := g.SelectedGroup()
	assert.Equal(t, "Speech", name)
	_, ok = g.Selected()
	assert.False(t, ok)
}

func TestGroupList_ExpandCollapseAll(t *testing.T) {
	g := NewGroupList()
	g.SetSize(80, 30)
	g.SetGroups(testGroups(), false)

	g.Update(keyMsg("C"))
	assert.Len(t, g.rows, 3)
	g.Update(keyMsg("E"))
	assert.Len(t, g.rows, 9)
}

func TestGroupList_Filter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"group name", "spe", []string{"Speech"}},
		{"member word", "MOROSE", []string{"Emotions"}},
		{"both", "e", []string{"Emotions", "Speech", "Time"}},
		{"none", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGroupList()
			g.SetSize(80, 30)
			g.SetGroups(testGroups(), false)
			g.Update(keyMsg("/"))
			typeText(g, tt.term)

			var names []string
			for _, grp := range g.Visible() {
				names = append(names, grp.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestGroupList_FilterKeepsWholeMemberList(t *testing.T) {
	g := NewGroupList()
	g.SetSize(80, 30)
	g.SetGroups(testGroups(), false)
	g.StartFilter()
	typeText(g, "ephemeral")

	require.Len(t, g.Visible(), 1)
	assert.Len(t, g.Visible()[0].Entries, 3)
}

func TestGroupList_EmptyStates(t *testing.T) {
	g := NewGroupList()
	g.SetSize(80, 30)
	g.SetGroups(nil, false)
	assert.Contains(t, g.View(), "No word groups yet")
	assert.Contains(t, g.View(), "Avg per Group 0")

	g.SetGroups(testGroups(), true)
	g.StartFilter()
	typeText(g, "zzz")
	view := g.View()
	assert.Contains(t, view, "No groups found matching your search")
	assert.Contains(t, view, "(cached)")
}
