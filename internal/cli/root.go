package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/vocab/internal/tui"
)

// ErrNoTerminal is returned when the TUI is started without a terminal
var ErrNoTerminal = errors.New("the interactive view needs a terminal; try `vocab list`")

// runFunc is a command body that receives a ready App
type runFunc func(cmd *cobra.Command, app *App, args []string) error

// wrapper turns a runFunc into a cobra RunE that loads the App first
type wrapper func(run runFunc) func(*cobra.Command, []string) error

// NewRootCommand creates the vocab command tree. load is called once per
// invocation, after flags are parsed.
func NewRootCommand(version string, load Loader) *cobra.Command {
	opts := &Options{Version: version}

	root := &cobra.Command{
		Use:   "vocab",
		Short: "Browse and grow your vocabulary from the terminal",
		Long: `vocab is a terminal client for a vocabulary server.

Run it without arguments for the interactive view, or use a subcommand
for one-shot output.

Examples:
  vocab                        # Interactive view
  vocab list --search eph      # Search the word list
  vocab add words.json         # Bulk add words from a JSON array
  vocab say ephemeral          # Pronounce a word`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default is $HOME/.config/vocab/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.Ephemeral, "ephemeral", false, "keep the session in memory only")

	var with wrapper = func(run runFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			app, err := load(*opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return run(cmd, app, args)
		}
	}

	root.RunE = with(runTUI)

	root.AddCommand(
		newListCommand(with),
		newGroupsCommand(with),
		newRandomCommand(with),
		newTonesCommand(with),
		newAddCommand(with),
		newDeleteCommand(with),
		newSayCommand(with),
		newSessionCommand(with),
		newVersionCommand(version),
	)
	return root
}

// runTUI runs the interactive view until the user quits
func runTUI(cmd *cobra.Command, app *App, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	model := tui.NewModel(app.Service, app.Narrator, tui.Options{
		PageSize:    app.Config.Browse.PageSize,
		SearchMode:  app.SearchMode(),
		ShowDetails: app.Config.UI.ShowDetails,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	app.Logger.Info("starting TUI")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		app.Logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	app.Logger.Info("shutting down")
	return nil
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vocab %s\n", version)
		},
	}
}
