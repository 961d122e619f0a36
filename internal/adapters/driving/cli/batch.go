package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/adapters/driven/codec/docjson"
)

var batchStopOnError bool

var batchCmd = &cobra.Command{
	Use:   "batch [path] [ops-file]",
	Short: "Apply a file of edit operations in order",
	Long: `Reads a JSON array of operations and applies them to the document in
order. Each step is {"op": name, "params": {...}}.

Operations: add_paragraph, insert_paragraph, update_paragraph,
delete_paragraph, replace_text, insert_text, format_run, add_table,
set_cell, set_metadata.

By default a failed step is recorded and execution continues; the
partial result is saved. With --stop-on-error the batch aborts at the
first failure and the document is left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchStopOnError, "stop-on-error", false, "abort at the first failed step and discard all changes")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read operations file: %w", err)
	}

	ops, err := docjson.DecodeOperations(data)
	if err != nil {
		return err
	}

	outcome, err := documentService.ExecuteBatch(context.Background(), args[0], ops, batchStopOnError)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	for _, r := range outcome.Results {
		if r.OK() {
			cmd.Printf("  [%d] %s: ok\n", r.Index, r.Operation)
			continue
		}
		cmd.Printf("  [%d] %s: %v\n", r.Index, r.Operation, r.Err)
	}

	cmd.Printf("\n%d succeeded, %d failed", outcome.Succeeded, outcome.Failed)
	if outcome.Saved {
		cmd.Printf(", saved %s\n", args[0])
	} else {
		cmd.Println(", changes discarded")
	}
	return nil
}
