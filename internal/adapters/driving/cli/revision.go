package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var revisionCmd = &cobra.Command{
	Use:     "revision",
	Aliases: []string{"rev"},
	Short:   "Manage tracked-change revisions",
	Long: `Record, list, accept and reject tracked-change revisions.

A revision is created pending and transitions exactly once to accepted
or rejected. Accepting applies the proposed edit to the paragraph it is
anchored to; rejecting leaves the body untouched.`,
}

var (
	revisionAuthor   string
	revisionOriginal string
	revisionNew      string
)

var revisionAddCmd = &cobra.Command{
	Use:   "add [path] [action] [index]",
	Short: "Record a revision against a paragraph",
	Long:  `Records a pending revision. Actions: insert, delete, format, move, replace.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runRevisionAdd,
}

var (
	revisionListPending bool
	revisionListAuthor  string
	revisionListAction  string
	revisionListJSON    bool
)

var revisionListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List revisions",
	Args:  cobra.ExactArgs(1),
	RunE:  runRevisionList,
}

var revisionBy string

var revisionAcceptCmd = &cobra.Command{
	Use:   "accept [path] [id]",
	Short: "Accept a pending revision and apply its edit",
	Args:  cobra.ExactArgs(2),
	RunE:  runRevisionAccept,
}

var revisionRejectCmd = &cobra.Command{
	Use:   "reject [path] [id]",
	Short: "Reject a pending revision",
	Args:  cobra.ExactArgs(2),
	RunE:  runRevisionReject,
}

var revisionAcceptAllCmd = &cobra.Command{
	Use:   "accept-all [path]",
	Short: "Accept every pending revision",
	Args:  cobra.ExactArgs(1),
	RunE:  runRevisionAcceptAll,
}

var revisionRejectAllCmd = &cobra.Command{
	Use:   "reject-all [path]",
	Short: "Reject every pending revision",
	Args:  cobra.ExactArgs(1),
	RunE:  runRevisionRejectAll,
}

var revisionStatsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Show revision counts by status",
	Args:  cobra.ExactArgs(1),
	RunE:  runRevisionStats,
}

var revisionClearCmd = &cobra.Command{
	Use:   "clear [path]",
	Short: "Remove all revisions",
	Args:  cobra.ExactArgs(1),
	RunE:  runRevisionClear,
}

var compareCmd = &cobra.Command{
	Use:   "compare [path] [index1] [index2]",
	Short: "Compare two paragraphs",
	Args:  cobra.ExactArgs(3),
	RunE:  runCompare,
}

var trackCmd = &cobra.Command{
	Use:   "track [path] [on|off]",
	Short: "Toggle change tracking",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrack,
}

func init() {
	revisionAddCmd.Flags().StringVar(&revisionAuthor, "author", "", "revision author; defaults to the configured author")
	revisionAddCmd.Flags().StringVar(&revisionOriginal, "original", "", "content before the proposed edit")
	revisionAddCmd.Flags().StringVar(&revisionNew, "new", "", "content after the proposed edit")

	revisionListCmd.Flags().BoolVar(&revisionListPending, "pending", false, "only revisions awaiting a decision")
	revisionListCmd.Flags().StringVar(&revisionListAuthor, "author", "", "filter by author")
	revisionListCmd.Flags().StringVar(&revisionListAction, "action", "", "filter by action")
	revisionListCmd.Flags().BoolVar(&revisionListJSON, "json", false, "output revisions as JSON")

	revisionAcceptCmd.Flags().StringVar(&revisionBy, "by", "", "who processed the revision")
	revisionRejectCmd.Flags().StringVar(&revisionBy, "by", "", "who processed the revision")
	revisionAcceptAllCmd.Flags().StringVar(&revisionBy, "by", "", "who processed the revisions")
	revisionRejectAllCmd.Flags().StringVar(&revisionBy, "by", "", "who processed the revisions")

	revisionCmd.AddCommand(revisionAddCmd)
	revisionCmd.AddCommand(revisionListCmd)
	revisionCmd.AddCommand(revisionAcceptCmd)
	revisionCmd.AddCommand(revisionRejectCmd)
	revisionCmd.AddCommand(revisionAcceptAllCmd)
	revisionCmd.AddCommand(revisionRejectAllCmd)
	revisionCmd.AddCommand(revisionStatsCmd)
	revisionCmd.AddCommand(revisionClearCmd)
	rootCmd.AddCommand(revisionCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(trackCmd)
}

func runRevisionAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[2], "index")
	if err != nil {
		return err
	}

	var original, newContent *string
	if cmd.Flags().Changed("original") {
		original = &revisionOriginal
	}
	if cmd.Flags().Changed("new") {
		newContent = &revisionNew
	}
	author := resolveAuthor(revisionAuthor)

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		r, err := eng.AddRevision(domain.RevisionAction(args[1]), author, index, original, newContent)
		if err != nil {
			return err
		}
		cmd.Printf("Recorded revision %d (%s by %s)\n", r.ID, r.Action, r.Author)
		return nil
	})
}

func runRevisionList(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		var revisions []domain.Revision
		switch {
		case revisionListPending:
			revisions = eng.PendingRevisions()
		case revisionListAuthor != "":
			revisions = eng.RevisionsByAuthor(revisionListAuthor)
		case revisionListAction != "":
			revisions = eng.RevisionsByAction(domain.RevisionAction(revisionListAction))
		default:
			revisions = eng.Revisions()
		}

		if revisionListJSON {
			return printJSON(cmd, revisions)
		}

		if len(revisions) == 0 {
			cmd.Println("No revisions.")
			return nil
		}

		for _, r := range revisions {
			cmd.Printf("  [%d] %s by %s on paragraph %d (%s)\n", r.ID, r.Action, r.Author, r.ParagraphIndex, r.Status)
		}
		cmd.Printf("\nTotal: %d revisions\n", len(revisions))
		return nil
	})
}

func runRevisionAccept(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseIndexArg(args[1], "revision id")
	if err != nil {
		return err
	}
	by := resolveAuthor(revisionBy)

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		r, err := eng.AcceptRevision(id, by)
		if err != nil {
			return err
		}
		cmd.Printf("Accepted revision %d\n", r.ID)
		return nil
	})
}

func runRevisionReject(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseIndexArg(args[1], "revision id")
	if err != nil {
		return err
	}
	by := resolveAuthor(revisionBy)

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		r, err := eng.RejectRevision(id, by)
		if err != nil {
			return err
		}
		cmd.Printf("Rejected revision %d\n", r.ID)
		return nil
	})
}

func runRevisionAcceptAll(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	by := resolveAuthor(revisionBy)
	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		n := eng.AcceptAllRevisions(by)
		cmd.Printf("Accepted %d revisions\n", n)
		return nil
	})
}

func runRevisionRejectAll(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	by := resolveAuthor(revisionBy)
	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		n := eng.RejectAllRevisions(by)
		cmd.Printf("Rejected %d revisions\n", n)
		return nil
	})
}

func runRevisionStats(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		stats := eng.RevisionStats()
		cmd.Printf("Revisions: %d total\n", stats.Total)
		cmd.Printf("  Pending:  %d\n", stats.Pending)
		cmd.Printf("  Accepted: %d\n", stats.Accepted)
		cmd.Printf("  Rejected: %d\n", stats.Rejected)
		return nil
	})
}

func runRevisionClear(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		n := eng.ClearRevisions()
		cmd.Printf("Removed %d revisions\n", n)
		return nil
	})
}

func runCompare(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index1, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}
	index2, err := parseIndexArg(args[2], "index")
	if err != nil {
		return err
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		cmp, err := eng.CompareParagraphs(index1, index2)
		if err != nil {
			return err
		}

		if cmp.Identical {
			cmd.Printf("Paragraphs %d and %d are identical.\n", cmp.Index1, cmp.Index2)
			return nil
		}
		cmd.Printf("Paragraphs differ (length difference %d):\n", cmp.LengthDiff)
		cmd.Printf("  [%d] %s\n", cmp.Index1, cmp.Text1)
		cmd.Printf("  [%d] %s\n", cmp.Index2, cmp.Text2)
		return nil
	})
}

func runTrack(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	var enable bool
	switch args[1] {
	case "on":
		enable = true
	case "off":
		enable = false
	default:
		return errors.New(`track mode must be "on" or "off"`)
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if enable {
			eng.EnableTracking()
			cmd.Println("Change tracking enabled")
		} else {
			eng.DisableTracking()
			cmd.Println("Change tracking disabled")
		}
		return nil
	})
}
