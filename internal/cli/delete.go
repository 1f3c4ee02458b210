package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/vocab/internal/speech"
	"github.com/mmcdole/vocab/internal/tui/styles"
)

func newDeleteCommand(with wrapper) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete WORD",
		Short: "Delete a word from your vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, app *App, args []string) error {
			word := args[0]
			w := cmd.OutOrStdout()

			if !yes && !confirm(cmd.InOrStdin(), w, fmt.Sprintf("Delete %q? [y/N] ", word)) {
				fmt.Fprintln(w, styles.DimStyle.Render("Canceled"))
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := app.Service.DeleteWord(ctx, word); err != nil {
				return fmt.Errorf("deleting %s: %w", word, err)
			}
			fmt.Fprintln(w, styles.SuccessStyle.Render(fmt.Sprintf("Deleted %q", word)))
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// confirm asks prompt on w and reads one answer line from r
func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(w)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func newSayCommand(with wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "say WORD",
		Short: "Pronounce a word",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, app *App, args []string) error {
			word := args[0]
			done, err := app.Narrator.Speak(word)
			if err != nil {
				return errors.New(speech.AlertMessage(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.AccentStyle.Render(styles.SpeakingChar), styles.WordStyle.Render(word))

			select {
			case err := <-done:
				if err != nil {
					return errors.New(speech.AlertMessage(err))
				}
				return nil
			case <-cmd.Context().Done():
				app.Narrator.Stop()
				<-done
				return cmd.Context().Err()
			}
		}),
	}
}
