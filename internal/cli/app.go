package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/vocab/internal/adapter"
	vocabapi "github.com/mmcdole/vocab/internal/adapter/source/vocabulary"
	"github.com/mmcdole/vocab/internal/search"
	"github.com/mmcdole/vocab/internal/speech"
	"github.com/mmcdole/vocab/internal/store"
	"github.com/mmcdole/vocab/internal/vocabulary"
)

// Options are the global flags every command sees
type Options struct {
	ConfigFile string
	Ephemeral  bool
	Version    string
}

// Loader builds the App once flags are parsed
type Loader func(opts Options) (*App, error)

// App holds the wired services shared by the TUI and the subcommands
type App struct {
	Config   *adapter.Config
	Service  *vocabulary.Service
	Narrator *speech.Narrator
	Logger   *slog.Logger

	closers []io.Closer
}

// SearchMode returns the configured search mode
func (a *App) SearchMode() search.Mode {
	return search.ParseMode(a.Config.UI.SearchMode)
}

// Close stops speech and releases the store and log file
func (a *App) Close() error {
	if a.Narrator != nil {
		a.Narrator.Stop()
	}
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// Bootstrap loads configuration and wires the real backend, store and speech engine
func Bootstrap(opts Options) (*App, error) {
	cfg, err := adapter.LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app := &App{Config: cfg}

	logger, logFile, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		app.closers = append(app.closers, logFile)
	}
	slog.SetDefault(logger)
	app.Logger = logger

	logger.Info("starting vocab", "version", opts.Version, "server", cfg.Server.URL)

	client := vocabapi.NewClient(cfg.Server.URL, vocabapi.Options{
		Endpoints:   cfg.Server.Endpoints.Map(),
		Timeout:     cfg.Server.Timeout,
		UserAgent:   "vocab/" + opts.Version,
		MaxFailures: cfg.Server.Breaker.MaxFailures,
		OpenTimeout: cfg.Server.Breaker.OpenTimeout,
	}, logger)

	cacheDir := cfg.Session.CacheDir
	if opts.Ephemeral {
		cacheDir = ""
	}
	// Sessions are partitioned by where groups actually come from
	st, err := store.NewSessionStore(cacheDir, client.GroupsURL(), store.WithIdleTimeout(cfg.Session.IdleTimeout))
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	app.closers = append(app.closers, st)

	app.Service = vocabulary.NewService(client, st, logger, vocabulary.WithUploadPause(cfg.Upload.Pause))
	app.Narrator = speech.NewNarrator(adapter.NewSpeaker(&cfg.Speech, logger), logger)
	return app, nil
}
