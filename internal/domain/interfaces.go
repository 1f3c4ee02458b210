package domain

import (
	"context"
	"encoding/json"
)

// VocabularyClient is the REST contract the client depends on
type VocabularyClient interface {
	// ListWords returns one page of the word list
	ListWords(ctx context.Context, page, limit int) (Page, error)

	// GetGroups returns the full group mapping
	GetGroups(ctx context.Context) (Groups, error)

	// GetRandom returns a server-sized random sample
	GetRandom(ctx context.Context) ([]Entry, error)

	// GetTones returns the entries tagged as tones
	GetTones(ctx context.Context) ([]Entry, error)

	// DeleteWord deletes an entry by its word key
	DeleteWord(ctx context.Context, word string) error

	// BulkAdd posts the full word array with the given offset
	BulkAdd(ctx context.Context, words []json.RawMessage, offset int) (BulkResult, error)
}

// Speaker turns text into audible speech.
// Speak blocks until the utterance finishes or ctx is canceled.
type Speaker interface {
	Speak(ctx context.Context, text string) error
	Name() string
	IsAvailable() error
}
