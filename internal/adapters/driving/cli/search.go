package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var (
	searchCaseSensitive bool
	searchWholeWord     bool
	searchJSON          bool
)

var findCmd = &cobra.Command{
	Use:   "find [path] [query]",
	Short: "Find text across the document",
	Long: `Scans every paragraph's concatenated text for the query and prints
each hit with its paragraph index and character offset. Overlapping
occurrences are all reported.`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

var replaceCmd = &cobra.Command{
	Use:   "replace [path] [find] [replace]",
	Short: "Replace text across the document",
	Long: `Replaces text inside each run individually. Matches that span a run
boundary are not found; use 'redline paragraph update' to rewrite a
whole paragraph instead.`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

func init() {
	findCmd.Flags().BoolVarP(&searchCaseSensitive, "case-sensitive", "c", false, "match case exactly")
	findCmd.Flags().BoolVarP(&searchWholeWord, "whole-word", "w", false, "match whole words only")
	findCmd.Flags().BoolVar(&searchJSON, "json", false, "output matches as JSON")

	replaceCmd.Flags().BoolVarP(&searchCaseSensitive, "case-sensitive", "c", false, "match case exactly")
	replaceCmd.Flags().BoolVarP(&searchWholeWord, "whole-word", "w", false, "match whole words only (case-insensitive mode)")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(replaceCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	opts := domain.SearchOptions{
		CaseSensitive: searchCaseSensitive,
		WholeWord:     searchWholeWord,
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		matches := eng.FindText(args[1], opts)

		if searchJSON {
			return printJSON(cmd, matches)
		}

		if len(matches) == 0 {
			cmd.Println("No matches found.")
			return nil
		}

		for _, m := range matches {
			cmd.Printf("  paragraph %d, offset %d: %s\n", m.ParagraphIndex, m.Offset, m.Text)
		}
		cmd.Printf("\nTotal: %d matches\n", len(matches))
		return nil
	})
}

func runReplace(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	opts := domain.SearchOptions{
		CaseSensitive: searchCaseSensitive,
		WholeWord:     searchWholeWord,
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		count := eng.ReplaceText(args[1], args[2], opts)
		cmd.Printf("Replaced %d occurrences\n", count)
		return nil
	})
}
