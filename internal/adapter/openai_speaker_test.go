package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAISpeaker_SynthesizesAndPlays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ephemeral", body["input"])
		assert.Equal(t, "tts-1", body["model"])
		assert.Equal(t, "nova", body["voice"])
		assert.Equal(t, 0.8, body["speed"])

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3-fake-mp3"))
	}))
	defer srv.Close()

	s := NewOpenAISpeaker(OpenAIOptions{
		APIKey:  "sk-test",
		Voice:   "nova",
		Speed:   0.8,
		BaseURL: srv.URL + "/v1",
	}, NullLogger())

	var played string
	s.err = nil
	s.play = func(_ context.Context, file string) error {
		data, err := os.ReadFile(file)
		require.NoError(t, err)
		played = string(data)
		return nil
	}

	require.NoError(t, s.Speak(context.Background(), "ephemeral"))
	assert.Equal(t, "ID3-fake-mp3", played)
}

func TestOpenAISpeaker_RequiresKey(t *testing.T) {
	s := NewOpenAISpeaker(OpenAIOptions{}, NullLogger())
	require.Error(t, s.IsAvailable())
	assert.Contains(t, s.IsAvailable().Error(), "API key")
	assert.Equal(t, "openai", s.Name())
}

func TestFindAudioPlayer(t *testing.T) {
	p, err := findAudioPlayer("darwin", fakeLookPath("ffplay", "afplay"))
	require.NoError(t, err)
	assert.Equal(t, "afplay", p.command)

	p, err = findAudioPlayer("linux", fakeLookPath("paplay", "ffplay"))
	require.NoError(t, err)
	assert.Equal(t, "ffplay", p.command)

	_, err = findAudioPlayer("linux", func(string) (string, error) { return "", errors.New("nope") })
	assert.Error(t, err)
}

func TestNewSpeaker_SelectsEngine(t *testing.T) {
	cfg := DefaultConfig().Speech
	cfg.Engine = "openai"
	assert.Equal(t, "openai", NewSpeaker(&cfg, NullLogger()).Name())

	cfg.Engine = "system"
	cfg.Command = "festival"
	sys := NewSpeaker(&cfg, NullLogger())
	assert.Error(t, sys.IsAvailable())
}
