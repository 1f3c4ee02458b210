package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOrderedObject(t *testing.T) {
	var keys []string
	var values []int
	err := DecodeOrderedObject([]byte(`{"b": 2, "a": 1, "c": 3}`), func(key string, value int) {
		keys = append(keys, key)
		values = append(values, value)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, keys)
	assert.Equal(t, []int{2, 1, 3}, values)

	t.Run("rejects non-object", func(t *testing.T) {
		err := DecodeOrderedObject([]byte(`[1, 2]`), func(string, int) {})
		assert.EqualError(t, err, "expected object, got [")
	})

	t.Run("reports the bad key", func(t *testing.T) {
		err := DecodeOrderedObject([]byte(`{"a": 1, "b": "two"}`), func(string, int) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `key "b"`)
	})
}

func TestGroups_JSONKeepsOrder(t *testing.T) {
	var groups Groups
	require.NoError(t, json.Unmarshal([]byte(`{
		"Verbs": [{"word": "abate", "meaning": "lessen"}],
		"Tones": [],
		"Adjectives": [{"word": "wry", "meaning": "dryly humorous"}]
	}`), &groups))
	assert.Equal(t, []string{"Verbs", "Tones", "Adjectives"}, groups.Names())

	data, err := json.Marshal(groups)
	require.NoError(t, err)

	var again Groups
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, groups.Names(), again.Names())
	assert.Equal(t, "wry", again[2].Entries[0].Word)
}
