package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage bullet and numbered lists",
}

var listCreateType string

var listCreateCmd = &cobra.Command{
	Use:   "create [path] [item]...",
	Short: "Append a list with one item per argument",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runListCreate,
}

var (
	listAddType  string
	listAddLevel int
)

var listAddCmd = &cobra.Command{
	Use:   "add [path] [text]",
	Short: "Append a single list item",
	Args:  cobra.ExactArgs(2),
	RunE:  runListAdd,
}

var listConvertType string

var listConvertCmd = &cobra.Command{
	Use:   "convert [path] [index]",
	Short: "Convert a paragraph to a list item",
	Args:  cobra.ExactArgs(2),
	RunE:  runListConvert,
}

var listSetTypeCmd = &cobra.Command{
	Use:   "set-type [path] [index] [type]",
	Short: "Switch a list item between bullet and numbered",
	Long: `Switches a list item between bullet and numbered while keeping its
indentation level.`,
	Args: cobra.ExactArgs(3),
	RunE: runListSetType,
}

var listRemoveCmd = &cobra.Command{
	Use:   "remove [path] [index]",
	Short: "Remove list formatting from a paragraph",
	Args:  cobra.ExactArgs(2),
	RunE:  runListRemove,
}

var listIndentCmd = &cobra.Command{
	Use:   "indent [path] [index]",
	Short: "Deepen a list item by one level",
	Args:  cobra.ExactArgs(2),
	RunE:  runListIndent,
}

var listOutdentCmd = &cobra.Command{
	Use:   "outdent [path] [index]",
	Short: "Raise a list item by one level",
	Args:  cobra.ExactArgs(2),
	RunE:  runListOutdent,
}

var listShowJSON bool

var listShowCmd = &cobra.Command{
	Use:   "show [path] [start]",
	Short: "Show the list starting at a paragraph",
	Args:  cobra.ExactArgs(2),
	RunE:  runListShow,
}

func init() {
	listCreateCmd.Flags().StringVar(&listCreateType, "type", "bullet", "list type (bullet, numbered)")
	listAddCmd.Flags().StringVar(&listAddType, "type", "bullet", "list type (bullet, numbered)")
	listAddCmd.Flags().IntVar(&listAddLevel, "level", 0, "indentation level")
	listConvertCmd.Flags().StringVar(&listConvertType, "type", "bullet", "list type (bullet, numbered)")
	listShowCmd.Flags().BoolVar(&listShowJSON, "json", false, "output the list as JSON")

	listCmd.AddCommand(listCreateCmd)
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listConvertCmd)
	listCmd.AddCommand(listSetTypeCmd)
	listCmd.AddCommand(listRemoveCmd)
	listCmd.AddCommand(listIndentCmd)
	listCmd.AddCommand(listOutdentCmd)
	listCmd.AddCommand(listShowCmd)
	rootCmd.AddCommand(listCmd)
}

func parseListType(s string) (domain.ListType, error) {
	t := domain.ListType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid list type %q (bullet, numbered)", s)
	}
	return t, nil
}

func runListCreate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	listType, err := parseListType(listCreateType)
	if err != nil {
		return err
	}
	items := args[1:]

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		var start int
		var err error
		if listType == domain.ListTypeNumbered {
			start, err = eng.CreateNumberedList(items)
		} else {
			start, err = eng.CreateBulletList(items)
		}
		if err != nil {
			return err
		}
		cmd.Printf("Created %s list of %d items at paragraph %d\n", listType, len(items), start)
		return nil
	})
}

func runListAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	listType, err := parseListType(listAddType)
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		index, err := eng.AddListItem(args[1], listType, listAddLevel)
		if err != nil {
			return err
		}
		cmd.Printf("Added list item at paragraph %d\n", index)
		return nil
	})
}

func runListConvert(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	listType, err := parseListType(listConvertType)
	if err != nil {
		return err
	}
	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.ConvertToList(index, listType); err != nil {
			return err
		}
		cmd.Printf("Converted paragraph %d to a %s list item\n", index, listType)
		return nil
	})
}

func runListSetType(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}
	listType, err := parseListType(args[2])
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.ChangeListType(index, listType); err != nil {
			return err
		}
		cmd.Printf("Set list type of paragraph %d to %s\n", index, listType)
		return nil
	})
}

func runListRemove(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.RemoveListFormatting(index); err != nil {
			return err
		}
		cmd.Printf("Removed list formatting from paragraph %d\n", index)
		return nil
	})
}

func runListIndent(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.IndentListItem(index); err != nil {
			return err
		}
		cmd.Printf("Indented list item at paragraph %d\n", index)
		return nil
	})
}

func runListOutdent(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.OutdentListItem(index); err != nil {
			return err
		}
		cmd.Printf("Outdented list item at paragraph %d\n", index)
		return nil
	})
}

func runListShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	start, err := parseIndexArg(args[1], "start")
	if err != nil {
		return err
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		list, err := eng.ListItems(start, nil)
		if err != nil {
			return err
		}

		if listShowJSON {
			return printJSON(cmd, list)
		}

		if len(list.Items) == 0 {
			cmd.Println("No list items.")
			return nil
		}

		cmd.Printf("List at paragraph %d (%s):\n", list.ParagraphIndex, list.Type)
		for _, item := range list.Items {
			cmd.Printf("  [%d] %s%s\n", item.Index, strings.Repeat("    ", item.Level), item.Text)
		}
		return nil
	})
}
