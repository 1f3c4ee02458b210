package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/vocab/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
	Page    Page // page whose loading state should be cleared
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// WordsLoadedMsg signals that a page of the word list has been loaded
type WordsLoadedMsg struct {
	Page   domain.Page
	Append bool // true for "load more"
}

// GroupsLoadedMsg signals that the group mapping is ready
type GroupsLoadedMsg struct {
	Groups    domain.Groups
	FromCache bool
}

// RandomLoadedMsg signals that a new random sample has arrived
type RandomLoadedMsg struct {
	Entries []domain.Entry
}

// TonesLoadedMsg signals that the tones collection has been loaded
type TonesLoadedMsg struct {
	Entries []domain.Entry
}

// WordDeletedMsg signals that the server deleted a word
type WordDeletedMsg struct {
	Word string
}

// UploadProgressMsg is sent for each server-reported step of a bulk upload
type UploadProgressMsg struct {
	Progress domain.UploadProgress
	NextCmd  tea.Cmd // Continuation command for streaming
}

// UploadDoneMsg signals the end of a bulk upload
type UploadDoneMsg struct {
	Result domain.UploadResult
	Err    error
}

// SpeechDoneMsg signals that an utterance ended
type SpeechDoneMsg struct {
	Word string
	Err  error
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
