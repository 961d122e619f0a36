package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Manage style definitions",
	Long:  `List, create, update, copy and apply named style definitions.`,
}

var (
	styleListType string
	styleListJSON bool
)

var styleListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List style definitions",
	Args:  cobra.ExactArgs(1),
	RunE:  runStyleList,
}

var styleAttrs = struct {
	styleType   string
	baseStyle   string
	fontName    string
	fontSize    int
	bold        bool
	italic      bool
	color       string
	alignment   string
	lineSpacing float64
}{}

var styleCreateCmd = &cobra.Command{
	Use:   "create [path] [name]",
	Short: "Create a custom style",
	Long: `Creates a named style definition. Font sizes must lie between 6 and
144 points, and the base style must already exist.`,
	Args: cobra.ExactArgs(2),
	RunE: runStyleCreate,
}

var styleUpdateCmd = &cobra.Command{
	Use:   "update [path] [name]",
	Short: "Update a style's attributes",
	Long:  `Updates only the attributes passed as flags; other attributes are left unchanged.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runStyleUpdate,
}

var styleDeleteCmd = &cobra.Command{
	Use:   "delete [path] [name]",
	Short: "Delete a custom style",
	Long:  `Deletes a custom style definition. Built-in styles cannot be deleted.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runStyleDelete,
}

var styleCopyCmd = &cobra.Command{
	Use:   "copy [path] [source] [new-name]",
	Short: "Copy a style under a new name",
	Args:  cobra.ExactArgs(3),
	RunE:  runStyleCopy,
}

var styleApplyCmd = &cobra.Command{
	Use:   "apply [path] [index] [name]",
	Short: "Apply a style to a paragraph",
	Args:  cobra.ExactArgs(3),
	RunE:  runStyleApply,
}

func init() {
	styleListCmd.Flags().StringVar(&styleListType, "type", "", "filter by style type: paragraph, character, table, numbering")
	styleListCmd.Flags().BoolVar(&styleListJSON, "json", false, "output styles as JSON")

	addStyleAttrFlags(styleCreateCmd)
	addStyleAttrFlags(styleUpdateCmd)
	styleCreateCmd.Flags().StringVar(&styleAttrs.styleType, "type", "paragraph", "style type: paragraph, character, table, numbering")
	styleCreateCmd.Flags().StringVar(&styleAttrs.baseStyle, "base", "", "style to inherit from")

	styleCmd.AddCommand(styleListCmd)
	styleCmd.AddCommand(styleCreateCmd)
	styleCmd.AddCommand(styleUpdateCmd)
	styleCmd.AddCommand(styleDeleteCmd)
	styleCmd.AddCommand(styleCopyCmd)
	styleCmd.AddCommand(styleApplyCmd)
	rootCmd.AddCommand(styleCmd)
}

func addStyleAttrFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&styleAttrs.fontName, "font", "", "font name")
	cmd.Flags().IntVar(&styleAttrs.fontSize, "size", 0, "font size in points")
	cmd.Flags().BoolVar(&styleAttrs.bold, "bold", false, "bold text")
	cmd.Flags().BoolVar(&styleAttrs.italic, "italic", false, "italic text")
	cmd.Flags().StringVar(&styleAttrs.color, "color", "", "font color as 6-digit hex")
	cmd.Flags().StringVar(&styleAttrs.alignment, "align", "", "paragraph alignment")
	cmd.Flags().Float64Var(&styleAttrs.lineSpacing, "line-spacing", 0, "line spacing multiplier")
}

func styleUpdateFromFlags(cmd *cobra.Command) engine.StyleUpdate {
	var u engine.StyleUpdate
	if cmd.Flags().Changed("font") {
		u.FontName = &styleAttrs.fontName
	}
	if cmd.Flags().Changed("size") {
		u.FontSize = &styleAttrs.fontSize
	}
	if cmd.Flags().Changed("bold") {
		u.Bold = &styleAttrs.bold
	}
	if cmd.Flags().Changed("italic") {
		u.Italic = &styleAttrs.italic
	}
	if cmd.Flags().Changed("color") {
		u.Color = &styleAttrs.color
	}
	if cmd.Flags().Changed("align") {
		a := domain.Alignment(styleAttrs.alignment)
		u.Alignment = &a
	}
	if cmd.Flags().Changed("line-spacing") {
		u.LineSpacing = &styleAttrs.lineSpacing
	}
	return u
}

func runStyleList(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	var filter *domain.StyleType
	if styleListType != "" {
		t := domain.StyleType(styleListType)
		if !t.IsValid() {
			return fmt.Errorf("invalid style type %q", styleListType)
		}
		filter = &t
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		styles := eng.Styles(filter)

		if styleListJSON {
			return printJSON(cmd, styles)
		}

		for _, s := range styles {
			origin := "custom"
			if s.BuiltIn {
				origin = "built-in"
			}
			cmd.Printf("  %-16s %s (%s)\n", s.Name, s.Type, origin)
		}
		cmd.Printf("\nTotal: %d styles\n", len(styles))
		return nil
	})
}

func runStyleCreate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	update := styleUpdateFromFlags(cmd)
	in := engine.StyleCreate{
		Name:        args[1],
		Type:        domain.StyleType(styleAttrs.styleType),
		FontName:    update.FontName,
		FontSize:    update.FontSize,
		Bold:        update.Bold,
		Italic:      update.Italic,
		Color:       update.Color,
		Alignment:   update.Alignment,
		LineSpacing: update.LineSpacing,
	}
	if styleAttrs.baseStyle != "" {
		in.BaseStyle = &styleAttrs.baseStyle
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		s, err := eng.CreateStyle(in)
		if err != nil {
			return err
		}
		cmd.Printf("Created style %s (%s)\n", s.Name, s.Type)
		return nil
	})
}

func runStyleUpdate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	update := styleUpdateFromFlags(cmd)
	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		s, err := eng.UpdateStyle(args[1], update)
		if err != nil {
			return err
		}
		cmd.Printf("Updated style %s\n", s.Name)
		return nil
	})
}

func runStyleDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.DeleteStyle(args[1]); err != nil {
			return err
		}
		cmd.Printf("Deleted style %s\n", args[1])
		return nil
	})
}

func runStyleCopy(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		s, err := eng.CopyStyle(args[1], args[2])
		if err != nil {
			return err
		}
		cmd.Printf("Copied style %s to %s\n", args[1], s.Name)
		return nil
	})
}

func runStyleApply(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.ApplyStyleToParagraph(index, args[2]); err != nil {
			return err
		}
		cmd.Printf("Applied style %s to paragraph %d\n", args[2], index)
		return nil
	})
}
