package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Entry is one vocabulary record. Word is the unique key.
type Entry struct {
	Word      string   `json:"word"`
	Meaning   string   `json:"meaning"`
	Synonyms  []string `json:"synonyms,omitempty"`
	Sentence  string   `json:"sentence,omitempty"`
	GroupName string   `json:"group_name,omitempty"`
}

// HasSynonyms reports whether the entry carries at least one synonym
func (e Entry) HasSynonyms() bool {
	return len(e.Synonyms) > 0
}

// Pagination is the server-supplied cursor for the paged word list.
// The client only ever forwards Page+1 to request more.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// Page is one page of the word list
type Page struct {
	Entries    []Entry
	Pagination Pagination
}

// Group is a named bucket of entries, defined server-side
type Group struct {
	Name    string
	Entries []Entry
}

// Groups is the group mapping in the order the server sent it.
// It encodes to and decodes from a JSON object keyed by group name.
type Groups []Group

// WordCount returns the number of entries across all groups
func (g Groups) WordCount() int {
	n := 0
	for _, grp := range g {
		n += len(grp.Entries)
	}
	return n
}

// AverageSize returns the mean group size rounded to the nearest integer
func (g Groups) AverageSize() int {
	if len(g) == 0 {
		return 0
	}
	return (2*g.WordCount() + len(g)) / (2 * len(g))
}

// Names returns the group names in order
func (g Groups) Names() []string {
	names := make([]string, len(g))
	for i, grp := range g {
		names[i] = grp.Name
	}
	return names
}

// MarshalJSON encodes the groups as an object, preserving order
func (g Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, grp := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(grp.Name)
		if err != nil {
			return nil, err
		}
		entries := grp.Entries
		if entries == nil {
			entries = []Entry{}
		}
		val, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by group name, keeping key order
func (g *Groups) UnmarshalJSON(data []byte) error {
	var out Groups
	err := DecodeOrderedObject(data, func(name string, entries []Entry) {
		out = append(out, Group{Name: name, Entries: entries})
	})
	if err != nil {
		return fmt.Errorf("groups: %w", err)
	}
	*g = out
	return nil
}

// DecodeOrderedObject decodes a JSON object whose values are all of type T,
// calling fn for each member in document order.
func DecodeOrderedObject[T any](data []byte, fn func(key string, value T)) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var value T
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		fn(key, value)
	}

	_, err = dec.Token()
	return err
}

// BulkResult is the server's bookkeeping after one bulk upload request
type BulkResult struct {
	TotalProcessed int  `json:"totalProcessed"`
	TotalWords     int  `json:"totalWords"`
	HasMore        bool `json:"hasMore"`
	NextOffset     int  `json:"nextOffset"`
}

// SessionInfo describes the current client session
type SessionInfo struct {
	StartedAt  time.Time
	LastSeen   time.Time
	HasGroups  bool
	Persistent bool // false in memory-only mode
}
