package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/search"
	"github.com/mmcdole/vocab/internal/tui/styles"
	"github.com/mmcdole/vocab/internal/vocabulary"
)

const requestTimeout = 30 * time.Second

// Empty states, shared with the interactive view's wording
const (
	noMatchesText = "No words found matching your search"
	noWordsText   = "No words yet. Start adding some!"
	noRandomText  = "No words available. Add some words first!"
	noTonesText   = "No tones available"
)

type listFlags struct {
	page    int
	limit   int
	all     bool
	search  string
	compact bool
}

func newListCommand(with wrapper) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your vocabulary, one page at a time",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, app *App, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), app, flags)
		}),
	}
	cmd.Flags().IntVar(&flags.page, "page", 1, "page to show")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "words per page (default from browse.page_size)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "fetch every page")
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "only show words containing this term")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "one line per word")
	return cmd
}

func runList(ctx context.Context, w io.Writer, app *App, flags *listFlags) error {
	limit := flags.limit
	if limit < 1 {
		limit = app.Config.Browse.PageSize
	}
	page := max(flags.page, 1)

	var words vocabulary.Collection
	for {
		p, err := fetchPage(ctx, app.Service, page, limit)
		if err != nil {
			return fmt.Errorf("loading words: %w", err)
		}
		if words.Loaded() {
			words.Append(p)
		} else {
			words.Reset(p)
		}
		if !flags.all || !p.Pagination.HasMore {
			break
		}
		page = words.NextPage()
	}

	pagination := words.Pagination()
	printHeader(w, "All Words", fmt.Sprintf("Browse your complete vocabulary collection (%d words)", pagination.Total))

	if !printFiltered(w, words.Entries(), flags.search, app.SearchMode(), flags.compact, noWordsText) {
		return nil
	}

	if words.CanLoadMore(flags.search) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.DimStyle.Render(fmt.Sprintf("Page %d / %d. Use --page %d or --all for more.",
			pagination.Page, pagination.TotalPages, words.NextPage())))
	}
	return nil
}

func fetchPage(ctx context.Context, svc *vocabulary.Service, page, limit int) (domain.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	return svc.FetchPage(ctx, page, limit)
}

// printFiltered prints the entries matching term. It reports whether
// anything was printed.
func printFiltered(w io.Writer, entries []domain.Entry, term string, mode search.Mode, compact bool, emptyText string) bool {
	visible := search.Filter(entries, term, mode)
	if len(visible) == 0 {
		if term == "" {
			fmt.Fprintln(w, styles.DimStyle.Render(emptyText))
		} else {
			printNoMatches(w, noMatchesText, search.Suggest(term, entries, 3))
		}
		return false
	}
	if compact {
		printEntryTable(w, visible)
	} else {
		printEntries(w, visible, false)
	}
	return true
}

func newRandomCommand(with wrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random selection of words",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, app *App, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			entries, err := app.Service.FetchRandom(ctx)
			if err != nil {
				return fmt.Errorf("loading random words: %w", err)
			}

			w := cmd.OutOrStdout()
			printHeader(w, "Random 10 Words", "Practice with a random selection")
			if len(entries) == 0 {
				fmt.Fprintln(w, styles.DimStyle.Render(noRandomText))
				return nil
			}
			printEntries(w, entries, true)
			return nil
		}),
	}
}

type tonesFlags struct {
	search  string
	compact bool
}

func newTonesCommand(with wrapper) *cobra.Command {
	flags := &tonesFlags{}
	cmd := &cobra.Command{
		Use:   "tones",
		Short: "Show the tone-related vocabulary",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, app *App, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			entries, err := app.Service.FetchTones(ctx)
			if err != nil {
				return fmt.Errorf("loading tones: %w", err)
			}

			w := cmd.OutOrStdout()
			printHeader(w, "Tones", fmt.Sprintf("Special collection of tone-related vocabulary (%d words)", len(entries)))
			printFiltered(w, entries, flags.search, app.SearchMode(), flags.compact, noTonesText)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "only show words containing this term")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "one line per word")
	return cmd
}
