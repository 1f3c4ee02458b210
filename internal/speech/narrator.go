// Package speech coordinates pronouncing words.
// Only one utterance plays at a time across the whole process.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmcdole/vocab/internal/domain"
)

var (
	// ErrUnavailable means no speech engine can be used
	ErrUnavailable = errors.New("text-to-speech is not available")

	// ErrAlreadySpeaking means the word is the one currently being spoken
	ErrAlreadySpeaking = errors.New("already speaking")
)

// UnsupportedMessage is the alert shown when speech is unavailable
const UnsupportedMessage = "Sorry, text-to-speech is not available"

// AlertMessage is the user-facing text for a failed Speak
func AlertMessage(err error) string {
	if errors.Is(err, ErrUnavailable) {
		// Keep the reason wrapped after the sentinel, if any
		return UnsupportedMessage + strings.TrimPrefix(err.Error(), ErrUnavailable.Error())
	}
	return "Could not pronounce word: " + err.Error()
}

// Narrator owns the single speaking slot
type Narrator struct {
	engine domain.Speaker
	logger *slog.Logger

	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
	gen     uint64
}

// NewNarrator creates a narrator over engine. A nil engine makes every
// Speak fail with ErrUnavailable.
func NewNarrator(engine domain.Speaker, logger *slog.Logger) *Narrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Narrator{engine: engine, logger: logger}
}

// Available reports whether an engine is usable
func (n *Narrator) Available() error {
	if n.engine == nil {
		return ErrUnavailable
	}
	if err := n.engine.IsAvailable(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// EngineName returns the engine's name, or "" with no engine
func (n *Narrator) EngineName() string {
	if n.engine == nil {
		return ""
	}
	return n.engine.Name()
}

// Speak cancels whatever is playing and starts word. The returned channel
// yields the utterance's result once and is then closed.
func (n *Narrator) Speak(word string) (<-chan error, error) {
	if err := n.Available(); err != nil {
		return nil, err
	}

	n.mu.Lock()
	if n.cancel != nil && n.current == word {
		n.mu.Unlock()
		return nil, ErrAlreadySpeaking
	}
	if n.cancel != nil {
		n.logger.Debug("interrupting utterance", "word", n.current)
		n.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	n.gen++
	gen := n.gen
	n.current = word
	n.cancel = cancel
	n.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := n.engine.Speak(ctx, word)
		cancel()

		n.mu.Lock()
		if n.gen == gen {
			n.current = ""
			n.cancel = nil
		}
		n.mu.Unlock()

		if err != nil && !errors.Is(err, context.Canceled) {
			n.logger.Error("speech failed", "word", word, "engine", n.engine.Name(), "error", err)
			done <- err
			return
		}
		done <- nil
	}()
	return done, nil
}

// Speaking returns the word being spoken, or "" when idle
func (n *Narrator) Speaking() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Stop cancels the current utterance, if any
func (n *Narrator) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
		n.current = ""
		n.gen++
	}
}
