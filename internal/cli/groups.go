package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmcdole/vocab/internal/domain"
	"github.com/mmcdole/vocab/internal/search"
	"github.com/mmcdole/vocab/internal/tui/styles"
)

type groupsFlags struct {
	search    string
	collapsed bool
}

func newGroupsCommand(with wrapper) *cobra.Command {
	flags := &groupsFlags{}
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Show words organized into groups",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, app *App, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			groups, fromCache, err := app.Service.FetchGroups(ctx)
			if err != nil {
				return fmt.Errorf("loading groups: %w", err)
			}
			printGroups(cmd.OutOrStdout(), groups, fromCache, flags)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "only show groups whose name or words contain this term")
	cmd.Flags().BoolVar(&flags.collapsed, "collapsed", false, "only show group names and sizes")
	return cmd
}

func printGroups(w io.Writer, groups domain.Groups, fromCache bool, flags *groupsFlags) {
	printHeader(w, "Word Groups", fmt.Sprintf("Explore %d words organized into %d meaningful groups", groups.WordCount(), len(groups)))

	stats := fmt.Sprintf("Total Groups %d  ·  Total Words %d  ·  Avg per Group %d",
		len(groups), groups.WordCount(), groups.AverageSize())
	if fromCache {
		stats += "  (cached)"
	}
	fmt.Fprintln(w, styles.DimStyle.Render(stats))
	fmt.Fprintln(w)

	visible := search.FilterGroups(groups, flags.search)
	if len(visible) == 0 {
		text := "No word groups yet"
		if flags.search != "" {
			text = "No groups found matching your search"
		}
		fmt.Fprintln(w, styles.DimStyle.Render(text))
		return
	}

	width := outputWidth(w)
	for i, g := range visible {
		marker := styles.ExpandedChar
		if flags.collapsed {
			marker = styles.CollapsedChar
		}
		fmt.Fprintf(w, "%s %s %s\n",
			styles.AccentStyle.Render(marker),
			styles.TitleStyle.Render(g.Name),
			styles.DimStyle.Render(styles.Plural(len(g.Entries), "word", "words")))

		if flags.collapsed {
			continue
		}
		for _, e := range g.Entries {
			fmt.Fprintln(w, "  "+styles.WordStyle.Render(e.Word))
			for _, line := range entryDetails(e, width-6) {
				fmt.Fprintln(w, "  "+line)
			}
		}
		if i < len(visible)-1 {
			fmt.Fprintln(w)
		}
	}
}
