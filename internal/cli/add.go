package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/tui/styles"
	"github.com/mmcdole/vocab/internal/vocabulary"
)

// ErrNoInput is returned when add has neither a file nor piped input
var ErrNoInput = errors.New("no input: pass a JSON file, or - to read from stdin")

const (
	uploadTimeout = 10 * time.Minute
	spinnerTick   = 80 * time.Millisecond
)

// clearLine clears the progress line from the terminal
const clearLine = "\r\033[K"

func newAddCommand(with wrapper) *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "add [FILE|-]",
		Short: "Add words from a JSON array",
		Long: `Add words from a JSON array read from FILE, or from stdin when FILE is -
or input is piped.

Use --example to print the expected format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if example {
				fmt.Fprintln(cmd.OutOrStdout(), vocabulary.ExampleInput)
				return nil
			}
			return with(func(cmd *cobra.Command, app *App, args []string) error {
				text, err := readInput(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				return runAdd(cmd.Context(), cmd.OutOrStdout(), app.Service, text)
			})(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "print the expected input format")
	return cmd
}

// readInput reads the upload text from the file argument or stdin
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}

	// A bare terminal would wait forever for input nobody is typing
	if len(args) == 0 {
		if _, ok := terminalFd(stdin); ok {
			return "", ErrNoInput
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// runAdd validates text and uploads it, drawing progress on w
func runAdd(ctx context.Context, w io.Writer, svc *vocabulary.Service, text string) error {
	words, err := vocabulary.ParseUploadInput(text)
	if err != nil {
		return errors.New(vocabulary.FailureMessage(err))
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	type result struct {
		res domain.UploadResult
		err error
	}
	resultCh := make(chan result, 1)
	progressCh := make(chan domain.UploadProgress, 1)

	go func() {
		res, err := svc.Upload(ctx, words, func(p domain.UploadProgress) {
			// Only the newest value is kept
			select {
			case <-progressCh:
			default:
			}
			progressCh <- p
		})
		resultCh <- result{res, err}
	}()

	line := newProgressLine(w)
	ticker := time.NewTicker(spinnerTick)
	defer ticker.Stop()

	for {
		select {
		case p := <-progressCh:
			line.set(p)

		case <-ticker.C:
			line.tick()

		case r := <-resultCh:
			// Drain a final progress value sent just before the result
			select {
			case p := <-progressCh:
				line.set(p)
			default:
			}
			line.done()

			if r.err != nil {
				return errors.New(vocabulary.FailureMessage(r.err))
			}
			fmt.Fprintln(w, styles.SuccessStyle.Render(vocabulary.SuccessMessage(r.res)))
			return nil
		}
	}
}

// progressLine draws "Uploading words... c / t". On a terminal the line is
// redrawn in place with a spinner; otherwise each new value gets its own line.
type progressLine struct {
	w        io.Writer
	terminal bool
	frame    int
	current  domain.UploadProgress
	printed  bool
}

func newProgressLine(w io.Writer) *progressLine {
	_, terminal := terminalFd(w)
	return &progressLine{w: w, terminal: terminal}
}

func (l *progressLine) text() string {
	return fmt.Sprintf("Uploading words... %d / %d", l.current.Current, l.current.Total)
}

func (l *progressLine) set(p domain.UploadProgress) {
	if l.printed && p == l.current {
		return
	}
	l.current = p
	l.printed = true
	if l.terminal {
		l.draw()
		return
	}
	fmt.Fprintln(l.w, l.text())
}

func (l *progressLine) tick() {
	if !l.terminal || !l.printed {
		return
	}
	l.frame++
	l.draw()
}

func (l *progressLine) draw() {
	fmt.Fprintf(l.w, "\r%s %s", styles.RenderSpinner(l.frame), styles.DimStyle.Render(l.text()))
}

func (l *progressLine) done() {
	if l.terminal && l.printed {
		fmt.Fprint(l.w, clearLine)
	}
}
