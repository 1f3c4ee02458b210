package tui

import (
	"context"
	"encoding/json"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/vocabulary"
)

// Command factories for async operations

const requestTimeout = 30 * time.Second

// LoadWordsCmd loads one page of the word list
func LoadWordsCmd(svc *vocabulary.Service, page, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		p, err := svc.FetchPage(ctx, page, limit)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading words", Page: PageWords}
		}
		return WordsLoadedMsg{Page: p, Append: page > 1}
	}
}

// LoadGroupsCmd loads the group mapping, from the session cache when present
func LoadGroupsCmd(svc *vocabulary.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		groups, fromCache, err := svc.FetchGroups(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading groups", Page: PageGroups}
		}
		return GroupsLoadedMsg{Groups: groups, FromCache: fromCache}
	}
}

// LoadRandomCmd fetches a new random sample
func LoadRandomCmd(svc *vocabulary.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		entries, err := svc.FetchRandom(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading random words", Page: PageRandom}
		}
		return RandomLoadedMsg{Entries: entries}
	}
}

// LoadTonesCmd loads the tones collection
func LoadTonesCmd(svc *vocabulary.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		entries, err := svc.FetchTones(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading tones", Page: PageTones}
		}
		return TonesLoadedMsg{Entries: entries}
	}
}

// DeleteWordCmd deletes a word on the server
func DeleteWordCmd(svc *vocabulary.Service, word string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := svc.DeleteWord(ctx, word); err != nil {
			return ErrMsg{Err: err, Context: "deleting " + word, Page: PageWords}
		}
		return WordDeletedMsg{Word: word}
	}
}

// UploadCmd runs a bulk upload with streaming progress updates using a channel.
// Uses a continuation pattern to pump every progress message to the UI.
func UploadCmd(ctx context.Context, svc *vocabulary.Service, words []json.RawMessage) tea.Cmd {
	return func() tea.Msg {
		events := make(chan tea.Msg, 1)

		go func() {
			defer close(events)
			result, err := svc.Upload(ctx, words, func(p domain.UploadProgress) {
				select {
				case events <- UploadProgressMsg{Progress: p}:
				case <-ctx.Done():
				}
			})
			events <- UploadDoneMsg{Result: result, Err: err}
		}()

		return readUploadEvent(events)
	}
}

// readUploadEvent reads one event and attaches the continuation command
func readUploadEvent(events <-chan tea.Msg) tea.Msg {
	msg, ok := <-events
	if !ok {
		return UploadDoneMsg{Err: context.Canceled}
	}
	if p, ok := msg.(UploadProgressMsg); ok {
		p.NextCmd = listenToUploadCmd(events)
		return p
	}
	return msg
}

// listenToUploadCmd returns a command that reads the next upload event
func listenToUploadCmd(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return readUploadEvent(events)
	}
}

// WaitForSpeechCmd waits for an utterance to end
func WaitForSpeechCmd(word string, done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return SpeechDoneMsg{Word: word, Err: <-done}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
