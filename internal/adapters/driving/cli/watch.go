package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/adapters/driven/watch"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a document and report changes",
	Long: `Watches the document file and prints a summary whenever it is
modified by another process. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	path := args[0]

	// Fail early if the document cannot be opened at all.
	if err := printWatchSummary(cmd, path); err != nil {
		return err
	}

	watcher, err := watch.New(path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer watcher.Close() //nolint:errcheck

	ctx := cmd.Context()
	go func() {
		if err := watcher.Run(ctx); err != nil {
			cmd.PrintErrf("watcher stopped: %v\n", err)
		}
	}()

	cmd.Printf("Watching %s (ctrl-c to stop)\n", path)
	for ev := range watcher.Events() {
		if ev.Type == watch.EventRemoved {
			cmd.Printf("%s removed\n", path)
			continue
		}
		if err := printWatchSummary(cmd, path); err != nil {
			cmd.PrintErrf("reload failed: %v\n", err)
		}
	}
	return nil
}

func printWatchSummary(cmd *cobra.Command, path string) error {
	return documentService.View(cmd.Context(), path, func(eng *engine.Engine) error {
		revStats := eng.RevisionStats()
		comStats := eng.CommentStats()
		cmd.Printf("%s: %d paragraphs, %d tables, %d pending revisions, %d open comments\n",
			path, eng.ParagraphCount(), eng.TableCount(), revStats.Pending, comStats.Open)
		return nil
	})
}
