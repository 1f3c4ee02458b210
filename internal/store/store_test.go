package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/vocab/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sampleGroups() domain.Groups {
	return domain.Groups{
		{Name: "zeta", Entries: []domain.Entry{{Word: "zenith", Meaning: "highest point"}}},
		{Name: "alpha", Entries: []domain.Entry{{Word: "abate", Meaning: "lessen"}, {Word: "acrid", Meaning: "bitter"}}},
		{Name: "mid", Entries: nil},
	}
}

func TestSessionStore_MemoryOnly(t *testing.T) {
	s, err := NewSessionStore("", "https://example.com")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetGroups()
	assert.False(t, ok)

	require.NoError(t, s.SaveGroups(sampleGroups()))

	got, ok := s.GetGroups()
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, got.Names())

	info := s.Info()
	assert.False(t, info.Persistent)
	assert.True(t, info.HasGroups)
}

func TestSessionStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	s, err := NewSessionStore(dir, "https://example.com", WithClock(clock.Now))
	require.NoError(t, err)
	require.NoError(t, s.SaveGroups(sampleGroups()))
	require.NoError(t, s.Close())

	clock.Advance(5 * time.Minute)

	s, err = NewSessionStore(dir, "https://example.com", WithClock(clock.Now))
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.GetGroups()
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, got.Names())
	assert.Equal(t, "acrid", got[1].Entries[1].Word)
	assert.True(t, s.Info().Persistent)
}

func TestSessionStore_ExpiredSessionIsWiped(t *testing.T) {
	dir := t.TempDir()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	opts := []Option{WithClock(clock.Now), WithIdleTimeout(10 * time.Minute)}

	s, err := NewSessionStore(dir, "https://example.com", opts...)
	require.NoError(t, err)
	require.NoError(t, s.SaveGroups(sampleGroups()))
	firstStart := s.Info().StartedAt
	require.NoError(t, s.Close())

	clock.Advance(11 * time.Minute)

	s, err = NewSessionStore(dir, "https://example.com", opts...)
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetGroups()
	assert.False(t, ok)
	assert.True(t, s.Info().StartedAt.After(firstStart))
}

func TestSessionStore_PartitionedByServer(t *testing.T) {
	dir := t.TempDir()

	a, err := NewSessionStore(dir, "https://a.example.com")
	require.NoError(t, err)
	require.NoError(t, a.SaveGroups(sampleGroups()))
	require.NoError(t, a.Close())

	b, err := NewSessionStore(dir, "https://b.example.com")
	require.NoError(t, err)
	defer b.Close()

	_, ok := b.GetGroups()
	assert.False(t, ok)
}

func TestSessionStore_End(t *testing.T) {
	tests := []struct {
		name string
		dir  func(t *testing.T) string
	}{
		{"memory", func(t *testing.T) string { return "" }},
		{"bolt", func(t *testing.T) string { return t.TempDir() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSessionStore(tt.dir(t), "https://example.com")
			require.NoError(t, err)
			defer s.Close()

			require.NoError(t, s.SaveGroups(sampleGroups()))
			require.NoError(t, s.End())

			assert.False(t, s.Info().HasGroups)
			_, ok := s.GetGroups()
			assert.False(t, ok)
		})
	}
}

func TestHashServerURL_Normalizes(t *testing.T) {
	assert.Equal(t, hashServerURL("https://Example.com/"), hashServerURL("https://example.com"))
	assert.NotEqual(t, hashServerURL("https://a.example.com"), hashServerURL("https://b.example.com"))
}
