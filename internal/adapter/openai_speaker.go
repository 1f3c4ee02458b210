package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/sashabaranov/go-openai"

	"github.com/mmcdole/vocab/internal/domain"
)

// OpenAIOptions configures the OpenAI speech engine
type OpenAIOptions struct {
	APIKey  string
	Model   string
	Voice   string
	Speed   float64
	BaseURL string // empty uses the public API
}

// audioPlayer plays a local mp3 file
type audioPlayer struct {
	command string
	args    []string // placed before the file name
}

// candidateAudioPlayers defines the preferred mp3 player order for each platform
var candidateAudioPlayers = map[string][]audioPlayer{
	"darwin": {
		{command: "afplay"},
		{command: "mpg123", args: []string{"-q"}},
		{command: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	},
	"linux": {
		{command: "mpg123", args: []string{"-q"}},
		{command: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
		{command: "play", args: []string{"-q"}},
		{command: "paplay"},
	},
	"windows": {
		{command: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	},
}

// OpenAISpeaker synthesizes speech with OpenAI TTS and plays it locally
type OpenAISpeaker struct {
	client *openai.Client
	opts   OpenAIOptions
	play   func(ctx context.Context, file string) error
	err    error
	logger *slog.Logger
}

// NewOpenAISpeaker creates the OpenAI engine. Missing credentials or a
// missing player are reported by IsAvailable.
func NewOpenAISpeaker(opts OpenAIOptions, logger *slog.Logger) *OpenAISpeaker {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Model == "" {
		opts.Model = string(openai.TTSModel1)
	}
	if opts.Voice == "" {
		opts.Voice = string(openai.VoiceAlloy)
	}
	if opts.Speed <= 0 {
		opts.Speed = 1.0
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	s := &OpenAISpeaker{
		client: openai.NewClientWithConfig(cfg),
		opts:   opts,
		logger: logger,
	}

	if opts.APIKey == "" {
		s.err = errors.New("OpenAI API key is required (set OPENAI_API_KEY or speech.openai_key)")
		return s
	}

	player, err := findAudioPlayer(runtime.GOOS, exec.LookPath)
	if err != nil {
		s.err = err
		return s
	}
	s.play = func(ctx context.Context, file string) error {
		args := append(append([]string{}, player.args...), file)
		return exec.CommandContext(ctx, player.command, args...).Run()
	}
	logger.Debug("openai speech player", "player", player.command)
	return s
}

func findAudioPlayer(goos string, lookPath func(string) (string, error)) (audioPlayer, error) {
	candidates, ok := candidateAudioPlayers[goos]
	if !ok {
		candidates = candidateAudioPlayers["linux"]
	}
	for _, p := range candidates {
		if _, err := lookPath(p.command); err == nil {
			return p, nil
		}
	}
	return audioPlayer{}, errors.New("no audio player found. Install mpg123, ffplay, sox or paplay")
}

func (s *OpenAISpeaker) Name() string { return "openai" }

func (s *OpenAISpeaker) IsAvailable() error { return s.err }

// Speak synthesizes text to a temporary mp3 and plays it
func (s *OpenAISpeaker) Speak(ctx context.Context, text string) error {
	if s.err != nil {
		return s.err
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.opts.Model),
		Input:          text,
		Voice:          openai.SpeechVoice(s.opts.Voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          s.opts.Speed,
	}

	response, err := s.client.CreateSpeech(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	tmp, err := os.CreateTemp("", "vocab-*.mp3")
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, response); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save audio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save audio: %w", err)
	}

	s.logger.Debug("playing synthesized speech", "text", text, "file", tmp.Name())
	if err := s.play(ctx, tmp.Name()); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to play audio: %w", err)
	}
	return nil
}

// NewSpeaker builds the engine selected in cfg
func NewSpeaker(cfg *SpeechConfig, logger *slog.Logger) domain.Speaker {
	if cfg.Engine == "openai" {
		return NewOpenAISpeaker(OpenAIOptions{
			APIKey: cfg.OpenAIKey,
			Model:  cfg.OpenAIModel,
			Voice:  cfg.OpenAIVoice,
			Speed:  cfg.Rate,
		}, logger)
	}
	return NewSystemSpeaker(cfg.Command, Voice{
		Name:   cfg.Voice,
		Rate:   cfg.Rate,
		Pitch:  cfg.Pitch,
		Volume: cfg.Volume,
	}, logger)
}
