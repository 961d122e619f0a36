package engine

import (
	"fmt"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// ParagraphCount returns the number of body paragraphs.
func (e *Engine) ParagraphCount() int {
	return len(e.paragraphs)
}

// Paragraph returns a copy of the paragraph at index.
func (e *Engine) Paragraph(index int) (domain.Paragraph, error) {
	if err := e.checkParagraphIndex(index); err != nil {
		return domain.Paragraph{}, err
	}
	return e.paragraphs[index].Clone(), nil
}

// Paragraphs returns copies of all body paragraphs in order.
func (e *Engine) Paragraphs() []domain.Paragraph {
	out := make([]domain.Paragraph, len(e.paragraphs))
	for i, p := range e.paragraphs {
		out[i] = p.Clone()
	}
	return out
}

// AddParagraph appends a paragraph holding a single run of text and
// returns the new last index.
func (e *Engine) AddParagraph(text string, style *string, alignment *domain.Alignment) (int, error) {
	if err := e.checkParagraphAttrs(style, alignment); err != nil {
		return 0, err
	}

	p := domain.Paragraph{Runs: []domain.Run{{Text: text}}}
	p.Style = style
	p.Alignment = alignment
	e.paragraphs = append(e.paragraphs, p)
	e.reindexParagraphs()
	return len(e.paragraphs) - 1, nil
}

// InsertParagraph inserts a paragraph at index, shifting every
// paragraph at or after it forward by one. An index equal to the
// paragraph count appends.
func (e *Engine) InsertParagraph(index int, text string, style *string, alignment *domain.Alignment) (int, error) {
	if index < 0 || index > len(e.paragraphs) {
		return 0, fmt.Errorf("%w: paragraph index %d (0-%d)", domain.ErrIndexOutOfRange, index, len(e.paragraphs))
	}
	if index == len(e.paragraphs) {
		return e.AddParagraph(text, style, alignment)
	}
	if err := e.checkParagraphAttrs(style, alignment); err != nil {
		return 0, err
	}

	p := domain.Paragraph{Runs: []domain.Run{{Text: text}}}
	p.Style = style
	p.Alignment = alignment

	e.paragraphs = append(e.paragraphs, domain.Paragraph{})
	copy(e.paragraphs[index+1:], e.paragraphs[index:])
	e.paragraphs[index] = p
	e.reindexParagraphs()
	return index, nil
}

// UpdateParagraph partially updates a paragraph. A non-nil text
// replaces all runs with a single new run carrying the text; per-run
// formatting is discarded. Nil fields are left untouched.
func (e *Engine) UpdateParagraph(index int, text, style *string, alignment *domain.Alignment) (domain.Paragraph, error) {
	if err := e.checkParagraphIndex(index); err != nil {
		return domain.Paragraph{}, err
	}
	if err := e.checkParagraphAttrs(style, alignment); err != nil {
		return domain.Paragraph{}, err
	}

	p := &e.paragraphs[index]
	if text != nil {
		p.Runs = []domain.Run{{Text: *text}}
	}
	if style != nil {
		p.Style = style
	}
	if alignment != nil {
		p.Alignment = alignment
	}
	return p.Clone(), nil
}

// DeleteParagraph removes the paragraph at index, shifting subsequent
// indices back by one. Revisions and comments anchored at or beyond
// the index become stale; no re-anchoring is performed.
func (e *Engine) DeleteParagraph(index int) error {
	if err := e.checkParagraphIndex(index); err != nil {
		return err
	}
	e.paragraphs = append(e.paragraphs[:index], e.paragraphs[index+1:]...)
	e.reindexParagraphs()
	return nil
}

// AddRun appends a run to a paragraph, optionally formatted, and
// returns a copy of the new run.
func (e *Engine) AddRun(paragraphIndex int, text string, format *domain.TextFormat) (domain.Run, error) {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return domain.Run{}, err
	}

	run := domain.Run{Text: text}
	if format != nil {
		if err := applyRunFormat(&run, *format); err != nil {
			return domain.Run{}, err
		}
	}

	p := &e.paragraphs[paragraphIndex]
	p.Runs = append(p.Runs, run)
	return run.Clone(), nil
}

// FormatRun applies a partial format to the run at runIndex within a
// paragraph and returns a copy of the updated run.
func (e *Engine) FormatRun(paragraphIndex, runIndex int, format domain.TextFormat) (domain.Run, error) {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return domain.Run{}, err
	}
	p := &e.paragraphs[paragraphIndex]
	if runIndex < 0 || runIndex >= len(p.Runs) {
		return domain.Run{}, fmt.Errorf("%w: run index %d (0-%d)", domain.ErrIndexOutOfRange, runIndex, len(p.Runs)-1)
	}
	if err := applyRunFormat(&p.Runs[runIndex], format); err != nil {
		return domain.Run{}, err
	}
	return p.Runs[runIndex].Clone(), nil
}

func (e *Engine) checkParagraphIndex(index int) error {
	if index < 0 || index >= len(e.paragraphs) {
		return fmt.Errorf("%w: paragraph index %d (0-%d)", domain.ErrIndexOutOfRange, index, len(e.paragraphs)-1)
	}
	return nil
}

func (e *Engine) checkParagraphAttrs(style *string, alignment *domain.Alignment) error {
	if alignment != nil && !alignment.IsValid() {
		return fmt.Errorf("%w: alignment %q", domain.ErrInvalidInput, *alignment)
	}
	if style != nil {
		if _, ok := e.findStyle(*style); !ok {
			return fmt.Errorf("%w: style %q", domain.ErrNotFound, *style)
		}
	}
	return nil
}
