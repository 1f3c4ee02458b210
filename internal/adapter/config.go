package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default backend hosts. Tones and bulk upload live on a second deployment.
const (
	DefaultServerURL    = "https://words-backend-zkxe.onrender.com"
	DefaultSecondaryURL = "https://words-backend-k8uu.onrender.com"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Browse  BrowseConfig  `mapstructure:"browse"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Speech  SpeechConfig  `mapstructure:"speech"`
	Session SessionConfig `mapstructure:"session"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds vocabulary backend configuration
type ServerConfig struct {
	URL       string          `mapstructure:"url"`
	Timeout   time.Duration   `mapstructure:"timeout"`
	Endpoints EndpointsConfig `mapstructure:"endpoints"`
	Breaker   BreakerConfig   `mapstructure:"breaker"`
}

// EndpointsConfig overrides the base URL per endpoint; empty means server.url
type EndpointsConfig struct {
	List   string `mapstructure:"list"`
	Groups string `mapstructure:"groups"`
	Random string `mapstructure:"random"`
	Tones  string `mapstructure:"tones"`
	Delete string `mapstructure:"delete"`
	Bulk   string `mapstructure:"bulk"`
}

// Map returns the non-empty overrides keyed by endpoint name
func (e EndpointsConfig) Map() map[string]string {
	all := map[string]string{
		"list":   e.List,
		"groups": e.Groups,
		"random": e.Random,
		"tones":  e.Tones,
		"delete": e.Delete,
		"bulk":   e.Bulk,
	}
	out := make(map[string]string, len(all))
	for k, v := range all {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// BreakerConfig controls fail-fast behavior while the backend is down
type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

// BrowseConfig holds word list settings
type BrowseConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// UploadConfig holds bulk upload settings
type UploadConfig struct {
	Pause time.Duration `mapstructure:"pause"` // delay between bulk requests
}

// SpeechConfig holds text-to-speech configuration
type SpeechConfig struct {
	Engine  string  `mapstructure:"engine"`  // "system" or "openai"
	Command string  `mapstructure:"command"` // system engine override, e.g. "espeak-ng"
	Voice   string  `mapstructure:"voice"`
	Rate    float64 `mapstructure:"rate"`
	Pitch   float64 `mapstructure:"pitch"`
	Volume  float64 `mapstructure:"volume"`

	OpenAIKey   string `mapstructure:"openai_key"`
	OpenAIModel string `mapstructure:"openai_model"`
	OpenAIVoice string `mapstructure:"openai_voice"`
}

// SessionConfig holds session cache configuration
type SessionConfig struct {
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	CacheDir    string        `mapstructure:"cache_dir"` // empty keeps the session in memory
}

// UIConfig holds UI configuration
type UIConfig struct {
	SearchMode  string `mapstructure:"search_mode"` // "substring" or "fuzzy"
	ShowDetails bool   `mapstructure:"show_details"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     DefaultServerURL,
			Timeout: 30 * time.Second,
			Endpoints: EndpointsConfig{
				Tones: DefaultSecondaryURL,
				Bulk:  DefaultSecondaryURL,
			},
			Breaker: BreakerConfig{
				MaxFailures: 5,
				OpenTimeout: 30 * time.Second,
			},
		},
		Browse: BrowseConfig{
			PageSize: 50,
		},
		Upload: UploadConfig{
			Pause: 100 * time.Millisecond,
		},
		Speech: SpeechConfig{
			Engine:      "system",
			Rate:        0.8,
			Pitch:       1.0,
			Volume:      1.0,
			OpenAIModel: "tts-1",
			OpenAIVoice: "alloy",
		},
		Session: SessionConfig{
			IdleTimeout: 30 * time.Minute,
			CacheDir:    defaultCachePath(),
		},
		UI: UIConfig{
			SearchMode:  "substring",
			ShowDetails: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vocab", "vocab.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vocab", "vocab.log")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vocab")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vocab")
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "vocab", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "vocab", "cache")
	}
}

// setDefaults registers every default so env overrides apply to all keys
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("server.url", cfg.Server.URL)
	v.SetDefault("server.timeout", cfg.Server.Timeout)
	v.SetDefault("server.endpoints.list", cfg.Server.Endpoints.List)
	v.SetDefault("server.endpoints.groups", cfg.Server.Endpoints.Groups)
	v.SetDefault("server.endpoints.random", cfg.Server.Endpoints.Random)
	v.SetDefault("server.endpoints.tones", cfg.Server.Endpoints.Tones)
	v.SetDefault("server.endpoints.delete", cfg.Server.Endpoints.Delete)
	v.SetDefault("server.endpoints.bulk", cfg.Server.Endpoints.Bulk)
	v.SetDefault("server.breaker.max_failures", cfg.Server.Breaker.MaxFailures)
	v.SetDefault("server.breaker.open_timeout", cfg.Server.Breaker.OpenTimeout)

	v.SetDefault("browse.page_size", cfg.Browse.PageSize)
	v.SetDefault("upload.pause", cfg.Upload.Pause)

	v.SetDefault("speech.engine", cfg.Speech.Engine)
	v.SetDefault("speech.command", cfg.Speech.Command)
	v.SetDefault("speech.voice", cfg.Speech.Voice)
	v.SetDefault("speech.rate", cfg.Speech.Rate)
	v.SetDefault("speech.pitch", cfg.Speech.Pitch)
	v.SetDefault("speech.volume", cfg.Speech.Volume)
	v.SetDefault("speech.openai_key", cfg.Speech.OpenAIKey)
	v.SetDefault("speech.openai_model", cfg.Speech.OpenAIModel)
	v.SetDefault("speech.openai_voice", cfg.Speech.OpenAIVoice)

	v.SetDefault("session.idle_timeout", cfg.Session.IdleTimeout)
	v.SetDefault("session.cache_dir", cfg.Session.CacheDir)

	v.SetDefault("ui.search_mode", cfg.UI.SearchMode)
	v.SetDefault("ui.show_details", cfg.UI.ShowDetails)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// LoadConfig loads configuration from file and environment.
// An explicit file must exist; the default locations are optional.
func LoadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	setDefaults(v, cfg)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. VOCAB_SERVER_URL
	v.SetEnvPrefix("VOCAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Speech.OpenAIKey == "" {
		cfg.Speech.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}
	cfg.Session.CacheDir = expandHome(cfg.Session.CacheDir)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.URL) == "" {
		return errors.New("config: server.url is required")
	}
	if c.Browse.PageSize < 1 {
		return fmt.Errorf("config: browse.page_size must be at least 1, got %d", c.Browse.PageSize)
	}
	switch c.Speech.Engine {
	case "system", "openai":
	default:
		return fmt.Errorf("config: unknown speech.engine %q", c.Speech.Engine)
	}
	switch c.UI.SearchMode {
	case "substring", "fuzzy":
	default:
		return fmt.Errorf("config: unknown ui.search_mode %q", c.UI.SearchMode)
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
