package engine

import (
	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// Apply executes one typed batch operation against the engine and
// returns its result payload. The operation set is closed, so the
// match below is exhaustive; there is no unknown-operation branch.
func (e *Engine) Apply(op domain.Operation) (any, error) {
	switch op := op.(type) {
	case domain.AddParagraphOp:
		index, err := e.AddParagraph(op.Text, op.Style, op.Alignment)
		if err != nil {
			return nil, err
		}
		return map[string]any{"index": index}, nil

	case domain.InsertParagraphOp:
		index, err := e.InsertParagraph(op.Index, op.Text, op.Style, op.Alignment)
		if err != nil {
			return nil, err
		}
		return map[string]any{"index": index}, nil

	case domain.UpdateParagraphOp:
		p, err := e.UpdateParagraph(op.Index, op.Text, op.Style, op.Alignment)
		if err != nil {
			return nil, err
		}
		return map[string]any{"index": p.Index, "text": p.Text()}, nil

	case domain.DeleteParagraphOp:
		if err := e.DeleteParagraph(op.Index); err != nil {
			return nil, err
		}
		return map[string]any{"deleted": true}, nil

	case domain.ReplaceTextOp:
		count := e.ReplaceText(op.Find, op.Replace, op.Options)
		return map[string]any{"replaced": count}, nil

	case domain.InsertTextOp:
		if err := e.InsertText(op.ParagraphIndex, op.Offset, op.Text, op.Format); err != nil {
			return nil, err
		}
		return map[string]any{"inserted": true}, nil

	case domain.FormatRunOp:
		run, err := e.FormatRun(op.ParagraphIndex, op.RunIndex, op.Format)
		if err != nil {
			return nil, err
		}
		return map[string]any{"text": run.Text}, nil

	case domain.AddTableOp:
		index, err := e.AddTable(op.Rows, op.Cols, op.Style, op.Data)
		if err != nil {
			return nil, err
		}
		return map[string]any{"index": index}, nil

	case domain.SetCellOp:
		cell, err := e.SetCell(op.TableIndex, op.Row, op.Col, op.Text)
		if err != nil {
			return nil, err
		}
		return map[string]any{"row": cell.Row, "col": cell.Col, "text": cell.Text}, nil

	case domain.SetMetadataOp:
		e.SetMetadata(op.Update)
		return map[string]any{"updated": true}, nil
	}

	// Unreachable: the Operation interface is sealed to the variants
	// above.
	return nil, nil
}
