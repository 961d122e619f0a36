package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var createCmd = &cobra.Command{
	Use:   "create [path]",
	Short: "Create a new empty document",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

var viewJSON bool

var viewCmd = &cobra.Command{
	Use:   "view [path]",
	Short: "Print the document text",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show document counts and metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Manage document metadata",
	Long:  `View or set the document core properties such as title and author.`,
}

var metaShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show document metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetaShow,
}

var (
	metaTitle    string
	metaAuthor   string
	metaSubject  string
	metaKeywords string
	metaComments string
	metaCategory string
)

var metaSetCmd = &cobra.Command{
	Use:   "set [path]",
	Short: "Set document metadata fields",
	Long:  `Updates only the fields passed as flags; other fields are left unchanged.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMetaSet,
}

func init() {
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "output paragraphs as JSON")

	metaSetCmd.Flags().StringVar(&metaTitle, "title", "", "document title")
	metaSetCmd.Flags().StringVar(&metaAuthor, "author", "", "document author")
	metaSetCmd.Flags().StringVar(&metaSubject, "subject", "", "document subject")
	metaSetCmd.Flags().StringVar(&metaKeywords, "keywords", "", "document keywords")
	metaSetCmd.Flags().StringVar(&metaComments, "comments", "", "document comments property")
	metaSetCmd.Flags().StringVar(&metaCategory, "category", "", "document category")

	metaCmd.AddCommand(metaShowCmd)
	metaCmd.AddCommand(metaSetCmd)

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(metaCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	path := args[0]
	if err := documentService.Create(context.Background(), path); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	cmd.Printf("Created %s\n", path)
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		paragraphs := eng.Paragraphs()

		if viewJSON {
			return printJSON(cmd, paragraphs)
		}

		for _, p := range paragraphs {
			cmd.Printf("[%d] %s\n", p.Index, p.Text())
		}
		return nil
	})
}

func runInfo(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		meta := eng.Metadata()
		revStats := eng.RevisionStats()
		comStats := eng.CommentStats()

		cmd.Printf("Document: %s\n\n", args[0])
		if meta.Title != "" {
			cmd.Printf("  Title:      %s\n", meta.Title)
		}
		if meta.Author != "" {
			cmd.Printf("  Author:     %s\n", meta.Author)
		}
		cmd.Printf("  Paragraphs: %d\n", eng.ParagraphCount())
		cmd.Printf("  Tables:     %d\n", eng.TableCount())
		cmd.Printf("  Bookmarks:  %d\n", len(eng.Bookmarks()))
		cmd.Printf("  Revisions:  %d (%d pending)\n", revStats.Total, revStats.Pending)
		cmd.Printf("  Comments:   %d (%d open)\n", comStats.Total, comStats.Open)
		return nil
	})
}

func runMetaShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		return printJSON(cmd, eng.Metadata())
	})
}

func runMetaSet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	update := domain.MetadataUpdate{}
	if cmd.Flags().Changed("title") {
		update.Title = &metaTitle
	}
	if cmd.Flags().Changed("author") {
		update.Author = &metaAuthor
	}
	if cmd.Flags().Changed("subject") {
		update.Subject = &metaSubject
	}
	if cmd.Flags().Changed("keywords") {
		update.Keywords = &metaKeywords
	}
	if cmd.Flags().Changed("comments") {
		update.Comments = &metaComments
	}
	if cmd.Flags().Changed("category") {
		update.Category = &metaCategory
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		meta := eng.SetMetadata(update)
		cmd.Printf("Metadata updated: %s\n", args[0])
		if meta.Title != "" {
			cmd.Printf("  Title:  %s\n", meta.Title)
		}
		if meta.Author != "" {
			cmd.Printf("  Author: %s\n", meta.Author)
		}
		return nil
	})
}
