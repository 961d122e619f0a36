package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var paragraphCmd = &cobra.Command{
	Use:     "paragraph",
	Aliases: []string{"para"},
	Short:   "Manage document paragraphs",
	Long:    `Add, insert, update, delete and list the body paragraphs of a document.`,
}

var (
	paragraphStyle     string
	paragraphAlignment string
)

var paragraphAddCmd = &cobra.Command{
	Use:   "add [path] [text]",
	Short: "Append a paragraph",
	Args:  cobra.ExactArgs(2),
	RunE:  runParagraphAdd,
}

var paragraphInsertCmd = &cobra.Command{
	Use:   "insert [path] [index] [text]",
	Short: "Insert a paragraph at an index",
	Long:  `Inserts a paragraph at the given position; subsequent paragraphs shift by one.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runParagraphInsert,
}

var paragraphUpdateText string

var paragraphUpdateCmd = &cobra.Command{
	Use:   "update [path] [index]",
	Short: "Update a paragraph's text, style or alignment",
	Args:  cobra.ExactArgs(2),
	RunE:  runParagraphUpdate,
}

var paragraphDeleteCmd = &cobra.Command{
	Use:   "delete [path] [index]",
	Short: "Delete a paragraph",
	Long:  `Deletes a paragraph; subsequent paragraphs shift back by one.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runParagraphDelete,
}

var paragraphListJSON bool

var paragraphListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List paragraphs with style and alignment",
	Args:  cobra.ExactArgs(1),
	RunE:  runParagraphList,
}

var runFormat = struct {
	bold        bool
	italic      bool
	underline   bool
	strike      bool
	superscript bool
	subscript   bool
	font        string
	size        int
	color       string
}{}

var runAddCmd = &cobra.Command{
	Use:   "add-run [path] [index] [text]",
	Short: "Append a formatted run to a paragraph",
	Args:  cobra.ExactArgs(3),
	RunE:  runRunAdd,
}

var runFormatCmd = &cobra.Command{
	Use:   "format-run [path] [index] [run-index]",
	Short: "Apply formatting to one run",
	Long:  `Applies only the formatting flags that were passed; other attributes are left unchanged.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runRunFormat,
}

var insertTextCmd = &cobra.Command{
	Use:   "insert-text [path] [index] [offset] [text]",
	Short: "Splice text into a paragraph at a character offset",
	Long:  `Splices text at the given character offset. The paragraph collapses to a single run.`,
	Args:  cobra.ExactArgs(4),
	RunE:  runInsertText,
}

func init() {
	paragraphAddCmd.Flags().StringVar(&paragraphStyle, "style", "", "style name to apply")
	paragraphAddCmd.Flags().StringVar(&paragraphAlignment, "align", "", "alignment: left, center, right, justify, distribute")
	paragraphInsertCmd.Flags().StringVar(&paragraphStyle, "style", "", "style name to apply")
	paragraphInsertCmd.Flags().StringVar(&paragraphAlignment, "align", "", "alignment: left, center, right, justify, distribute")
	paragraphUpdateCmd.Flags().StringVar(&paragraphUpdateText, "text", "", "new text; replaces all runs")
	paragraphUpdateCmd.Flags().StringVar(&paragraphStyle, "style", "", "new style name")
	paragraphUpdateCmd.Flags().StringVar(&paragraphAlignment, "align", "", "new alignment")
	paragraphListCmd.Flags().BoolVar(&paragraphListJSON, "json", false, "output paragraphs as JSON")

	addFormatFlags(runAddCmd)
	addFormatFlags(runFormatCmd)
	addFormatFlags(insertTextCmd)

	paragraphCmd.AddCommand(paragraphAddCmd)
	paragraphCmd.AddCommand(paragraphInsertCmd)
	paragraphCmd.AddCommand(paragraphUpdateCmd)
	paragraphCmd.AddCommand(paragraphDeleteCmd)
	paragraphCmd.AddCommand(paragraphListCmd)
	paragraphCmd.AddCommand(runAddCmd)
	paragraphCmd.AddCommand(runFormatCmd)
	paragraphCmd.AddCommand(insertTextCmd)
	rootCmd.AddCommand(paragraphCmd)
}

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&runFormat.bold, "bold", false, "bold text")
	cmd.Flags().BoolVar(&runFormat.italic, "italic", false, "italic text")
	cmd.Flags().BoolVar(&runFormat.underline, "underline", false, "underlined text")
	cmd.Flags().BoolVar(&runFormat.strike, "strike", false, "struck-through text")
	cmd.Flags().BoolVar(&runFormat.superscript, "superscript", false, "superscript text")
	cmd.Flags().BoolVar(&runFormat.subscript, "subscript", false, "subscript text")
	cmd.Flags().StringVar(&runFormat.font, "font", "", "font name")
	cmd.Flags().IntVar(&runFormat.size, "size", 0, "font size in points")
	cmd.Flags().StringVar(&runFormat.color, "color", "", "font color as 6-digit hex, e.g. FF0000")
}

// formatFromFlags builds a partial format from the flags that were
// actually passed on the command line.
func formatFromFlags(cmd *cobra.Command) domain.TextFormat {
	var f domain.TextFormat
	if cmd.Flags().Changed("bold") {
		f.Bold = &runFormat.bold
	}
	if cmd.Flags().Changed("italic") {
		f.Italic = &runFormat.italic
	}
	if cmd.Flags().Changed("underline") {
		f.Underline = &runFormat.underline
	}
	if cmd.Flags().Changed("strike") {
		f.Strike = &runFormat.strike
	}
	if cmd.Flags().Changed("superscript") {
		f.Superscript = &runFormat.superscript
	}
	if cmd.Flags().Changed("subscript") {
		f.Subscript = &runFormat.subscript
	}
	if cmd.Flags().Changed("font") {
		f.FontName = &runFormat.font
	}
	if cmd.Flags().Changed("size") {
		f.FontSize = &runFormat.size
	}
	if cmd.Flags().Changed("color") {
		f.Color = &runFormat.color
	}
	return f
}

func paragraphAttrsFromFlags() (*string, *domain.Alignment) {
	var style *string
	if paragraphStyle != "" {
		style = &paragraphStyle
	}
	var alignment *domain.Alignment
	if paragraphAlignment != "" {
		a := domain.Alignment(paragraphAlignment)
		alignment = &a
	}
	return style, alignment
}

func parseIndexArg(arg, what string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, arg, err)
	}
	return idx, nil
}

func runParagraphAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	style, alignment := paragraphAttrsFromFlags()
	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		index, err := eng.AddParagraph(args[1], style, alignment)
		if err != nil {
			return err
		}
		cmd.Printf("Added paragraph %d\n", index)
		return nil
	})
}

func runParagraphInsert(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	style, alignment := paragraphAttrsFromFlags()
	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		at, err := eng.InsertParagraph(index, args[2], style, alignment)
		if err != nil {
			return err
		}
		cmd.Printf("Inserted paragraph at %d\n", at)
		return nil
	})
}

func runParagraphUpdate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	var text *string
	if cmd.Flags().Changed("text") {
		text = &paragraphUpdateText
	}
	var style *string
	if cmd.Flags().Changed("style") {
		style = &paragraphStyle
	}
	var alignment *domain.Alignment
	if cmd.Flags().Changed("align") {
		a := domain.Alignment(paragraphAlignment)
		alignment = &a
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		p, err := eng.UpdateParagraph(index, text, style, alignment)
		if err != nil {
			return err
		}
		cmd.Printf("Updated paragraph %d: %s\n", p.Index, p.Text())
		return nil
	})
}

func runParagraphDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.DeleteParagraph(index); err != nil {
			return err
		}
		cmd.Printf("Deleted paragraph %d\n", index)
		return nil
	})
}

func runParagraphList(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		paragraphs := eng.Paragraphs()

		if paragraphListJSON {
			return printJSON(cmd, paragraphs)
		}

		if len(paragraphs) == 0 {
			cmd.Println("No paragraphs.")
			return nil
		}

		for _, p := range paragraphs {
			style := "Normal"
			if p.Style != nil {
				style = *p.Style
			}
			align := ""
			if p.Alignment != nil {
				align = " " + p.Alignment.String()
			}
			cmd.Printf("  [%d] (%s%s, %d runs) %s\n", p.Index, style, align, len(p.Runs), p.Text())
		}
		cmd.Printf("\nTotal: %d paragraphs\n", len(paragraphs))
		return nil
	})
}

func runRunAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	format := formatFromFlags(cmd)
	var fmtPtr *domain.TextFormat
	if !format.IsZero() {
		fmtPtr = &format
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		run, err := eng.AddRun(index, args[2], fmtPtr)
		if err != nil {
			return err
		}
		cmd.Printf("Added run to paragraph %d: %s\n", index, run.Text)
		return nil
	})
}

func runRunFormat(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}
	runIndex, err := parseIndexArg(args[2], "run index")
	if err != nil {
		return err
	}

	format := formatFromFlags(cmd)
	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		run, err := eng.FormatRun(index, runIndex, format)
		if err != nil {
			return err
		}
		cmd.Printf("Formatted run %d of paragraph %d: %s\n", runIndex, index, run.Text)
		return nil
	})
}

func runInsertText(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}
	offset, err := parseIndexArg(args[2], "offset")
	if err != nil {
		return err
	}

	format := formatFromFlags(cmd)
	var fmtPtr *domain.TextFormat
	if !format.IsZero() {
		fmtPtr = &format
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.InsertText(index, offset, args[3], fmtPtr); err != nil {
			return err
		}
		cmd.Printf("Inserted text into paragraph %d at offset %d\n", index, offset)
		return nil
	})
}
