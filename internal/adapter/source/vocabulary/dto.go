package vocabulary

import (
	"encoding/json"
	"fmt"

	"github.com/mmcdole/vocab/internal/domain"
)

// EntryDTO is a vocabulary entry as the backend sends it
type EntryDTO struct {
	Word      string   `json:"word"`
	Meaning   string   `json:"meaning"`
	Synonyms  []string `json:"synonyms"`
	Sentence  string   `json:"sentence"`
	GroupName string   `json:"group_name"`
}

// PaginationDTO is the cursor block of the list response
type PaginationDTO struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// ListResponse is the response from GET /api/vocabulary
type ListResponse struct {
	Data       []EntryDTO    `json:"data"`
	Pagination PaginationDTO `json:"pagination"`
}

// GroupDTO is one key of the groups object
type GroupDTO struct {
	Name    string
	Entries []EntryDTO
}

// GroupsResponse is the response from GET /api/vocabulary/groups.
// The object's key order is kept.
type GroupsResponse []GroupDTO

// UnmarshalJSON decodes the groups object in key order
func (r *GroupsResponse) UnmarshalJSON(data []byte) error {
	var out GroupsResponse
	err := domain.DecodeOrderedObject(data, func(name string, entries []EntryDTO) {
		out = append(out, GroupDTO{Name: name, Entries: entries})
	})
	if err != nil {
		return fmt.Errorf("groups: %w", err)
	}
	*r = out
	return nil
}

// BulkRequest is the body of POST /api/vocabulary/bulk
type BulkRequest struct {
	Words  []json.RawMessage `json:"words"`
	Offset int               `json:"offset"`
}

// BulkResponse is the bookkeeping returned by POST /api/vocabulary/bulk
type BulkResponse struct {
	TotalProcessed int  `json:"totalProcessed"`
	TotalWords     int  `json:"totalWords"`
	HasMore        bool `json:"hasMore"`
	NextOffset     int  `json:"nextOffset"`
}

// ErrorResponse is the optional body of a failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
