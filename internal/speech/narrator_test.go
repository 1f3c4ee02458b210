package speech

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingEngine speaks until canceled or released
type blockingEngine struct {
	mu       sync.Mutex
	started  chan string
	release  chan struct{}
	canceled []string
	avail    error
}

func newBlockingEngine() *blockingEngine {
	return &blockingEngine{started: make(chan string, 8), release: make(chan struct{})}
}

func (e *blockingEngine) Name() string       { return "blocking" }
func (e *blockingEngine) IsAvailable() error { return e.avail }

func (e *blockingEngine) Speak(ctx context.Context, text string) error {
	e.started <- text
	select {
	case <-ctx.Done():
		e.mu.Lock()
		e.canceled = append(e.canceled, text)
		e.mu.Unlock()
		return ctx.Err()
	case <-e.release:
		return nil
	}
}

func waitStarted(t *testing.T, e *blockingEngine, want string) {
	t.Helper()
	select {
	case got := <-e.started:
		require.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatalf("utterance %q never started", want)
	}
}

func TestNarrator_SpeakingBCancelsA(t *testing.T) {
	engine := newBlockingEngine()
	n := NewNarrator(engine, nil)

	doneA, err := n.Speak("alpha")
	require.NoError(t, err)
	waitStarted(t, engine, "alpha")
	assert.Equal(t, "alpha", n.Speaking())

	doneB, err := n.Speak("beta")
	require.NoError(t, err)
	waitStarted(t, engine, "beta")

	// A finishes as canceled, without error and without clearing B's mark
	assert.NoError(t, <-doneA)
	assert.Equal(t, "beta", n.Speaking())

	engine.mu.Lock()
	assert.Equal(t, []string{"alpha"}, engine.canceled)
	engine.mu.Unlock()

	close(engine.release)
	assert.NoError(t, <-doneB)
	assert.Equal(t, "", n.Speaking())
}

func TestNarrator_SameWordIsNoop(t *testing.T) {
	engine := newBlockingEngine()
	n := NewNarrator(engine, nil)

	_, err := n.Speak("alpha")
	require.NoError(t, err)
	waitStarted(t, engine, "alpha")

	_, err = n.Speak("alpha")
	assert.ErrorIs(t, err, ErrAlreadySpeaking)

	n.Stop()
	assert.Equal(t, "", n.Speaking())
}

func TestNarrator_Unavailable(t *testing.T) {
	_, err := NewNarrator(nil, nil).Speak("alpha")
	assert.ErrorIs(t, err, ErrUnavailable)

	engine := newBlockingEngine()
	engine.avail = errors.New("no espeak")
	_, err = NewNarrator(engine, nil).Speak("alpha")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "no espeak")
}

type failingEngine struct{}

func (failingEngine) Name() string                        { return "failing" }
func (failingEngine) IsAvailable() error                  { return nil }
func (failingEngine) Speak(context.Context, string) error { return errors.New("device busy") }

func TestNarrator_EngineErrorClearsMark(t *testing.T) {
	n := NewNarrator(failingEngine{}, nil)

	done, err := n.Speak("alpha")
	require.NoError(t, err)
	assert.EqualError(t, <-done, "device busy")
	assert.Equal(t, "", n.Speaking())
}

func TestAlertMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no engine", ErrUnavailable, "Sorry, text-to-speech is not available"},
		{"with reason", fmt.Errorf("%w: no espeak", ErrUnavailable), "Sorry, text-to-speech is not available: no espeak"},
		{"engine failure", errors.New("device busy"), "Could not pronounce word: device busy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AlertMessage(tt.err))
		})
	}
}
