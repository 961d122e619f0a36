package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage named paragraph bookmarks",
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add [path] [name] [index]",
	Short: "Bookmark a paragraph under a unique name",
	Args:  cobra.ExactArgs(3),
	RunE:  runBookmarkAdd,
}

var bookmarkListJSON bool

var bookmarkListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List bookmarks",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkList,
}

var bookmarkDeleteCmd = &cobra.Command{
	Use:   "delete [path] [name]",
	Short: "Delete a bookmark",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookmarkDelete,
}

func init() {
	bookmarkListCmd.Flags().BoolVar(&bookmarkListJSON, "json", false, "output bookmarks as JSON")

	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	bookmarkCmd.AddCommand(bookmarkDeleteCmd)
	rootCmd.AddCommand(bookmarkCmd)
}

func runBookmarkAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[2], "index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		b, err := eng.AddBookmark(args[1], index)
		if err != nil {
			return err
		}
		cmd.Printf("Added bookmark %s at paragraph %d\n", b.Name, b.ParagraphIndex)
		return nil
	})
}

func runBookmarkList(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		bookmarks := eng.Bookmarks()

		if bookmarkListJSON {
			return printJSON(cmd, bookmarks)
		}

		if len(bookmarks) == 0 {
			cmd.Println("No bookmarks.")
			return nil
		}

		for _, b := range bookmarks {
			cmd.Printf("  %-24s paragraph %d\n", b.Name, b.ParagraphIndex)
		}
		return nil
	})
}

func runBookmarkDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.DeleteBookmark(args[1]); err != nil {
			return err
		}
		cmd.Printf("Deleted bookmark %s\n", args[1])
		return nil
	})
}
