// Package cli wires the cobra command tree for the redline binary.
// Every command follows the same ownership model: open the document
// file, run the edit against a fresh engine, save on exit.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/adapters/driven/codec/docjson"
	configfile "github.com/redline-labs/redline-cli/internal/adapters/driven/config/file"
	"github.com/redline-labs/redline-cli/internal/core/ports/driven"
	"github.com/redline-labs/redline-cli/internal/core/ports/driving"
	"github.com/redline-labs/redline-cli/internal/core/services"
	"github.com/redline-labs/redline-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "0.1.0"

// Services used by the commands. Wired in initServices; tests swap
// them out directly.
var (
	documentService driving.DocumentService
	sessionService  driving.SessionService
	configStore     driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "redline",
	Short: "Edit and annotate structured documents from the command line",
	Long: `Redline is a document edit and annotation engine.

It stores documents as styled paragraphs and tables, supports search
and replace, character and paragraph formatting, tracked-changes
revisions with accept/reject workflows, and threaded comments.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	initServices()
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, which
// flows into long-running commands such as watch and mcp serve.
func ExecuteContext(ctx context.Context) error {
	initServices()
	return rootCmd.ExecuteContext(ctx)
}

// initServices builds the default service wiring. Services already set
// (by tests) are left alone.
func initServices() {
	codec := docjson.New()
	if documentService == nil {
		documentService = services.NewDocumentService(codec)
	}
	if sessionService == nil {
		sessionService = services.NewSessionService(codec)
	}
	if configStore == nil {
		store, err := configfile.NewConfigStore(defaultConfigDir())
		if err != nil {
			logger.Warn("config store unavailable: %v", err)
		} else {
			configStore = store
		}
	}
}

// defaultConfigDir returns the directory holding the user config file.
func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".redline"
	}
	return filepath.Join(home, ".redline")
}

// defaultAuthor returns the configured author name, or a fallback.
func defaultAuthor() string {
	if configStore != nil {
		if name := configStore.GetString(configfile.KeyAuthorName); name != "" {
			return name
		}
	}
	return "redline"
}

// resolveAuthor prefers the flag value over the configured default.
func resolveAuthor(flag string) string {
	if flag != "" {
		return flag
	}
	return defaultAuthor()
}

// printJSON renders v as indented JSON on the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
