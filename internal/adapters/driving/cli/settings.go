package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	configfile "github.com/redline-labs/redline-cli/internal/adapters/driven/config/file"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure application settings.

Settings are stored in a TOML file under ~/.redline and apply to every
document; per-document properties live in the document itself (see
'redline meta').`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a settings value",
	Long: `Set a settings value and persist it immediately.

Known keys:
  author.name  - default author for revisions and comments
  mcp.port     - default HTTP port for 'redline mcp serve' (0 = stdio)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	author := configStore.GetString(configfile.KeyAuthorName)
	if author == "" {
		author = "(not set)"
	}
	cmd.Printf("  %s: %s\n", configfile.KeyAuthorName, author)

	port := configStore.GetInt(configfile.KeyMCPPort)
	if port > 0 {
		cmd.Printf("  %s: %d\n", configfile.KeyMCPPort, port)
	} else {
		cmd.Printf("  %s: stdio\n", configfile.KeyMCPPort)
	}

	cmd.Println()
	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Integer-valued keys are stored as integers so GetInt works.
	var value any = raw
	if key == configfile.KeyMCPPort {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", raw, err)
		}
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}
