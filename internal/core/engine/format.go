package engine

import (
	"fmt"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// applyRunFormat overwrites a run's attributes from the present fields
// of a partial format. Colors are validated as 6 hex digits. Font size
// on the direct run path is intentionally not range-checked; the
// [domain.MinStyleFontSize, domain.MaxStyleFontSize] bound applies to
// style definitions only.
func applyRunFormat(run *domain.Run, f domain.TextFormat) error {
	if f.Color != nil && !domain.ValidColor(*f.Color) {
		return fmt.Errorf("%w: color %q is not a 6-hex-digit RGB string", domain.ErrInvalidInput, *f.Color)
	}

	if f.Bold != nil {
		run.Bold = f.Bold
	}
	if f.Italic != nil {
		run.Italic = f.Italic
	}
	if f.Underline != nil {
		run.Underline = f.Underline
	}
	if f.Strike != nil {
		run.Strike = f.Strike
	}
	if f.FontName != nil {
		run.FontName = f.FontName
	}
	if f.FontSize != nil {
		run.FontSize = f.FontSize
	}
	if f.Color != nil {
		run.Color = f.Color
	}
	if f.Superscript != nil {
		run.Superscript = f.Superscript
	}
	if f.Subscript != nil {
		run.Subscript = f.Subscript
	}
	return nil
}
