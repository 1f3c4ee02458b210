package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/tui/styles"
)

func newSessionCommand(with wrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or end the session that caches groups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, app *App, _ []string) error {
			info := app.Service.SessionInfo()
			printKeyValues(cmd.OutOrStdout(), sessionRows(info, app.Config.Session.IdleTimeout, time.Now()))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "end",
		Short: "End the session and clear cached groups",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, app *App, _ []string) error {
			if err := app.Service.EndSession(); err != nil {
				return fmt.Errorf("ending session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render("Session ended; cached groups cleared"))
			return nil
		}),
	})
	return cmd
}

func sessionRows(info domain.SessionInfo, idle time.Duration, now time.Time) [][]string {
	storage := "memory (ends with this process)"
	if info.Persistent {
		storage = "disk"
	}
	groups := "not cached"
	if info.HasGroups {
		groups = "cached"
	}

	rows := [][]string{
		{"Storage", storage},
		{"Started", formatAgo(info.StartedAt, now)},
		{"Last activity", formatAgo(info.LastSeen, now)},
	}
	if info.Persistent && idle > 0 {
		rows = append(rows, []string{"Expires", "after " + idle.String() + " idle (" + info.LastSeen.Add(idle).Format("15:04") + ")"})
	}
	return append(rows, []string{"Groups", groups})
}

// formatAgo renders t as a clock time with a rounded age
func formatAgo(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	age := now.Sub(t).Round(time.Second)
	if age < time.Second {
		return t.Format("15:04:05") + " (just now)"
	}
	return fmt.Sprintf("%s (%s ago)", t.Format("15:04:05"), age)
}
