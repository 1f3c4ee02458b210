package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Equal(t, 50, cfg.Browse.PageSize)
	assert.Equal(t, 100*time.Millisecond, cfg.Upload.Pause)
	assert.Equal(t, 0.8, cfg.Speech.Rate)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, map[string]string{
		"tones": DefaultSecondaryURL,
		"bulk":  DefaultSecondaryURL,
	}, cfg.Server.Endpoints.Map())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  url: http://localhost:3000
  endpoints:
    tones: ""
    bulk: http://localhost:4000
browse:
  page_size: 20
upload:
  pause: 250ms
speech:
  engine: openai
ui:
  search_mode: fuzzy
`)
	t.Setenv("VOCAB_SESSION_IDLE_TIMEOUT", "5m")
	t.Setenv("VOCAB_SPEECH_RATE", "1.2")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.Server.URL)
	assert.Equal(t, map[string]string{"bulk": "http://localhost:4000"}, cfg.Server.Endpoints.Map())
	assert.Equal(t, 20, cfg.Browse.PageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Upload.Pause)
	assert.Equal(t, "openai", cfg.Speech.Engine)
	assert.Equal(t, 1.2, cfg.Speech.Rate)
	assert.Equal(t, "fuzzy", cfg.UI.SearchMode)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTimeout)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"no url", func(c *Config) { c.Server.URL = " " }, "server.url"},
		{"page size", func(c *Config) { c.Browse.PageSize = 0 }, "page_size"},
		{"engine", func(c *Config) { c.Speech.Engine = "festival" }, "speech.engine"},
		{"search mode", func(c *Config) { c.UI.SearchMode = "regex" }, "search_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("warning").String())
	assert.Equal(t, "INFO", parseLogLevel("nonsense").String())
}

func TestSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vocab.log")

	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("hello", "word", "abate")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"word":"abate"`)
}
