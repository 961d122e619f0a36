package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage comment threads",
	Long: `Add, list, resolve and reply to comments anchored to paragraphs.
Resolving is freely reversible; a resolved comment can be reopened.`,
}

var (
	commentAuthor string
	commentStart  int
	commentEnd    int
)

var commentAddCmd = &cobra.Command{
	Use:   "add [path] [index] [text]",
	Short: "Attach a comment to a paragraph",
	Args:  cobra.ExactArgs(3),
	RunE:  runCommentAdd,
}

var (
	commentListStatus string
	commentListAuthor string
	commentListPara   int
	commentListJSON   bool
)

var commentListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentList,
}

var commentUpdateText string

var commentUpdateCmd = &cobra.Command{
	Use:   "update [path] [id]",
	Short: "Update a comment's text",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentUpdate,
}

var commentResolveCmd = &cobra.Command{
	Use:   "resolve [path] [id]",
	Short: "Mark a comment as resolved",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentResolve,
}

var commentReopenCmd = &cobra.Command{
	Use:   "reopen [path] [id]",
	Short: "Reopen a resolved comment",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentReopen,
}

var commentReplyCmd = &cobra.Command{
	Use:   "reply [path] [id] [text]",
	Short: "Add a threaded reply to a comment",
	Args:  cobra.ExactArgs(3),
	RunE:  runCommentReply,
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete [path] [id]",
	Short: "Delete a comment and its replies",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommentDelete,
}

var commentStatsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Show comment counts by status",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentStats,
}

func init() {
	commentAddCmd.Flags().StringVar(&commentAuthor, "author", "", "comment author; defaults to the configured author")
	commentAddCmd.Flags().IntVar(&commentStart, "start", 0, "character offset where the anchored span starts")
	commentAddCmd.Flags().IntVar(&commentEnd, "end", 0, "character offset where the anchored span ends")

	commentListCmd.Flags().StringVar(&commentListStatus, "status", "", "filter by status: open or resolved")
	commentListCmd.Flags().StringVar(&commentListAuthor, "author", "", "filter by author")
	commentListCmd.Flags().IntVar(&commentListPara, "paragraph", -1, "filter by paragraph index")
	commentListCmd.Flags().BoolVar(&commentListJSON, "json", false, "output comments as JSON")

	commentUpdateCmd.Flags().StringVar(&commentUpdateText, "text", "", "new comment text")

	commentReplyCmd.Flags().StringVar(&commentAuthor, "author", "", "reply author; defaults to the configured author")

	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentUpdateCmd)
	commentCmd.AddCommand(commentResolveCmd)
	commentCmd.AddCommand(commentReopenCmd)
	commentCmd.AddCommand(commentReplyCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	commentCmd.AddCommand(commentStatsCmd)
	rootCmd.AddCommand(commentCmd)
}

func runCommentAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	var start, end *int
	if cmd.Flags().Changed("start") {
		start = &commentStart
	}
	if cmd.Flags().Changed("end") {
		end = &commentEnd
	}
	author := resolveAuthor(commentAuthor)

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		c, err := eng.AddComment(args[2], author, index, start, end)
		if err != nil {
			return err
		}
		cmd.Printf("Added comment %d on paragraph %d\n", c.ID, c.ParagraphIndex)
		return nil
	})
}

func runCommentList(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		var comments []domain.Comment
		var err error
		switch {
		case commentListPara >= 0:
			comments, err = eng.ParagraphComments(commentListPara)
			if err != nil {
				return err
			}
		case commentListStatus == string(domain.CommentOpen):
			comments = eng.OpenComments()
		case commentListStatus == string(domain.CommentResolved):
			comments = eng.ResolvedComments()
		case commentListAuthor != "":
			comments = eng.CommentsByAuthor(commentListAuthor)
		default:
			comments = eng.Comments()
		}

		if commentListJSON {
			return printJSON(cmd, comments)
		}

		if len(comments) == 0 {
			cmd.Println("No comments.")
			return nil
		}

		for _, c := range comments {
			cmd.Printf("  [%d] %s on paragraph %d (%s): %s\n", c.ID, c.Author, c.ParagraphIndex, c.Status, c.Text)
			for _, r := range c.Replies {
				cmd.Printf("      [%d] %s: %s\n", r.ID, r.Author, r.Text)
			}
		}
		cmd.Printf("\nTotal: %d comments\n", len(comments))
		return nil
	})
}

func runCommentUpdate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseIndexArg(args[1], "comment id")
	if err != nil {
		return err
	}

	var text *string
	if cmd.Flags().Changed("text") {
		text = &commentUpdateText
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		c, err := eng.UpdateComment(id, text, nil)
		if err != nil {
			return err
		}
		cmd.Printf("Updated comment %d\n", c.ID)
		return nil
	})
}

func runCommentResolve(cmd *cobra.Command, args []string) error {
	return setCommentStatus(cmd, args, true)
}

func runCommentReopen(cmd *cobra.Command, args []string) error {
	return setCommentStatus(cmd, args, false)
}

func setCommentStatus(cmd *cobra.Command, args []string, resolve bool) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseIndexArg(args[1], "comment id")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		var c domain.Comment
		var err error
		if resolve {
			c, err = eng.ResolveComment(id)
		} else {
			c, err = eng.ReopenComment(id)
		}
		if err != nil {
			return err
		}
		cmd.Printf("Comment %d is now %s\n", c.ID, c.Status)
		return nil
	})
}

func runCommentReply(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseIndexArg(args[1], "comment id")
	if err != nil {
		return err
	}
	author := resolveAuthor(commentAuthor)

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		r, err := eng.AddReply(id, args[2], author)
		if err != nil {
			return err
		}
		cmd.Printf("Added reply %d to comment %d\n", r.ID, id)
		return nil
	})
}

func runCommentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseIndexArg(args[1], "comment id")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.DeleteComment(id); err != nil {
			return err
		}
		cmd.Printf("Deleted comment %d\n", id)
		return nil
	})
}

func runCommentStats(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		stats := eng.CommentStats()
		cmd.Printf("Comments: %d total\n", stats.Total)
		cmd.Printf("  Open:     %d\n", stats.Open)
		cmd.Printf("  Resolved: %d\n", stats.Resolved)
		return nil
	})
}
