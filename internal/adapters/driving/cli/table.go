package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redline-labs/redline-cli/internal/core/engine"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage document tables",
	Long:  `Add, edit and inspect the rectangular tables of a document.`,
}

var tableAddStyle string

var tableAddCmd = &cobra.Command{
	Use:   "add [path] [rows] [cols]",
	Short: "Append a table",
	Args:  cobra.ExactArgs(3),
	RunE:  runTableAdd,
}

var tableDeleteCmd = &cobra.Command{
	Use:   "delete [path] [index]",
	Short: "Delete a table",
	Args:  cobra.ExactArgs(2),
	RunE:  runTableDelete,
}

var tableShowJSON bool

var tableShowCmd = &cobra.Command{
	Use:   "show [path] [index]",
	Short: "Print a table's cells",
	Args:  cobra.ExactArgs(2),
	RunE:  runTableShow,
}

var tableSetCellCmd = &cobra.Command{
	Use:   "set-cell [path] [index] [row] [col] [text]",
	Short: "Set one cell's text",
	Args:  cobra.ExactArgs(5),
	RunE:  runTableSetCell,
}

var tableAddRowCmd = &cobra.Command{
	Use:   "add-row [path] [index]",
	Short: "Append an empty row",
	Args:  cobra.ExactArgs(2),
	RunE:  runTableAddRow,
}

var tableAddColumnCmd = &cobra.Command{
	Use:   "add-column [path] [index]",
	Short: "Append an empty column",
	Args:  cobra.ExactArgs(2),
	RunE:  runTableAddColumn,
}

var tableDeleteRowCmd = &cobra.Command{
	Use:   "delete-row [path] [index] [row]",
	Short: "Delete a row",
	Args:  cobra.ExactArgs(3),
	RunE:  runTableDeleteRow,
}

var tableDeleteColumnCmd = &cobra.Command{
	Use:   "delete-column [path] [index] [col]",
	Short: "Delete a column",
	Args:  cobra.ExactArgs(3),
	RunE:  runTableDeleteColumn,
}

var tableMergeCmd = &cobra.Command{
	Use:   "merge [path] [index] [start-row] [start-col] [end-row] [end-col]",
	Short: "Merge a rectangular cell range",
	Long: `Merges the cells of a rectangular range into the top-left anchor cell.
The range is validated in full before anything changes; an invalid
range leaves the table untouched.`,
	Args: cobra.ExactArgs(6),
	RunE: runTableMerge,
}

var tableStyleCmd = &cobra.Command{
	Use:   "style [path] [index] [style]",
	Short: "Set a table's style",
	Args:  cobra.ExactArgs(3),
	RunE:  runTableStyle,
}

func init() {
	tableAddCmd.Flags().StringVar(&tableAddStyle, "style", "", "table style name")
	tableShowCmd.Flags().BoolVar(&tableShowJSON, "json", false, "output the table as JSON")

	tableCmd.AddCommand(tableAddCmd)
	tableCmd.AddCommand(tableDeleteCmd)
	tableCmd.AddCommand(tableShowCmd)
	tableCmd.AddCommand(tableSetCellCmd)
	tableCmd.AddCommand(tableAddRowCmd)
	tableCmd.AddCommand(tableAddColumnCmd)
	tableCmd.AddCommand(tableDeleteRowCmd)
	tableCmd.AddCommand(tableDeleteColumnCmd)
	tableCmd.AddCommand(tableMergeCmd)
	tableCmd.AddCommand(tableStyleCmd)
	rootCmd.AddCommand(tableCmd)
}

func runTableAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	rows, err := parseIndexArg(args[1], "row count")
	if err != nil {
		return err
	}
	cols, err := parseIndexArg(args[2], "column count")
	if err != nil {
		return err
	}

	var style *string
	if tableAddStyle != "" {
		style = &tableAddStyle
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		index, err := eng.AddTable(rows, cols, style, nil)
		if err != nil {
			return err
		}
		cmd.Printf("Added table %d (%dx%d)\n", index, rows, cols)
		return nil
	})
}

func runTableDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "table index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.DeleteTable(index); err != nil {
			return err
		}
		cmd.Printf("Deleted table %d\n", index)
		return nil
	})
}

func runTableShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "table index")
	if err != nil {
		return err
	}

	return documentService.View(context.Background(), args[0], func(eng *engine.Engine) error {
		table, err := eng.Table(index)
		if err != nil {
			return err
		}

		if tableShowJSON {
			return printJSON(cmd, table)
		}

		cmd.Printf("Table %d (%dx%d)\n", table.Index, table.Rows(), table.Cols())
		for _, row := range table.Cells {
			for _, cell := range row {
				if cell.Covered() {
					cmd.Printf("  [%d,%d] (merged)\n", cell.Row, cell.Col)
					continue
				}
				cmd.Printf("  [%d,%d] %s\n", cell.Row, cell.Col, cell.Text)
			}
		}
		return nil
	})
}

func runTableSetCell(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "table index")
	if err != nil {
		return err
	}
	row, err := parseIndexArg(args[2], "row")
	if err != nil {
		return err
	}
	col, err := parseIndexArg(args[3], "column")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		cell, err := eng.SetCell(index, row, col, args[4])
		if err != nil {
			return err
		}
		cmd.Printf("Set cell [%d,%d] of table %d: %s\n", cell.Row, cell.Col, index, cell.Text)
		return nil
	})
}

func runTableAddRow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "table index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		rows, err := eng.AddRow(index)
		if err != nil {
			return err
		}
		cmd.Printf("Table %d now has %d rows\n", index, rows)
		return nil
	})
}

func runTableAddColumn(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "table index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		cols, err := eng.AddColumn(index)
		if err != nil {
			return err
		}
		cmd.Printf("Table %d now has %d columns\n", index, cols)
		return nil
	})
}

func runTableDeleteRow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "table index")
	if err != nil {
		return err
	}
	row, err := parseIndexArg(args[2], "row")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.DeleteRow(index, row); err != nil {
			return err
		}
		cmd.Printf("Deleted row %d of table %d\n", row, index)
		return nil
	})
}

func runTableDeleteColumn(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "table index")
	if err != nil {
		return err
	}
	col, err := parseIndexArg(args[2], "column")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.DeleteColumn(index, col); err != nil {
			return err
		}
		cmd.Printf("Deleted column %d of table %d\n", col, index)
		return nil
	})
}

func runTableMerge(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	nums := make([]int, 5)
	names := []string{"table index", "start row", "start column", "end row", "end column"}
	for i := range nums {
		n, err := parseIndexArg(args[i+1], names[i])
		if err != nil {
			return err
		}
		nums[i] = n
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.MergeCells(nums[0], nums[1], nums[2], nums[3], nums[4]); err != nil {
			return fmt.Errorf("merge failed: %w", err)
		}
		cmd.Printf("Merged cells [%d,%d]..[%d,%d] of table %d\n", nums[1], nums[2], nums[3], nums[4], nums[0])
		return nil
	})
}

func runTableStyle(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	index, err := parseIndexArg(args[1], "table index")
	if err != nil {
		return err
	}

	return documentService.Edit(context.Background(), args[0], func(eng *engine.Engine) error {
		if err := eng.SetTableStyle(index, args[2]); err != nil {
			return err
		}
		cmd.Printf("Set style of table %d to %s\n", index, args[2])
		return nil
	})
}
