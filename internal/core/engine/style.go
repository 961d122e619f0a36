package engine

import (
	"fmt"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// StyleCreate is the input for creating a style definition.
type StyleCreate struct {
	Name        string
	Type        domain.StyleType
	BaseStyle   *string
	FontName    *string
	FontSize    *int
	Bold        *bool
	Italic      *bool
	Color       *string
	Alignment   *domain.Alignment
	LineSpacing *float64
}

// StyleUpdate is a partial update to a style definition. Nil fields
// are left untouched.
type StyleUpdate struct {
	FontName    *string
	FontSize    *int
	Bold        *bool
	Italic      *bool
	Color       *string
	Alignment   *domain.Alignment
	LineSpacing *float64
}

// Style returns a copy of the style with the given name.
func (e *Engine) Style(name string) (domain.Style, error) {
	i, ok := e.findStyle(name)
	if !ok {
		return domain.Style{}, fmt.Errorf("%w: style %q", domain.ErrNotFound, name)
	}
	return e.styles[i].Clone(), nil
}

// Styles returns copies of all styles, optionally filtered by type.
func (e *Engine) Styles(filter *domain.StyleType) []domain.Style {
	var out []domain.Style
	for _, s := range e.styles {
		if filter != nil && s.Type != *filter {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// BuiltInStyles returns the names of all built-in styles.
func (e *Engine) BuiltInStyles() []string {
	var out []string
	for _, s := range e.styles {
		if s.BuiltIn {
			out = append(out, s.Name)
		}
	}
	return out
}

// CustomStyles returns the names of all user-created styles.
func (e *Engine) CustomStyles() []string {
	var out []string
	for _, s := range e.styles {
		if !s.BuiltIn {
			out = append(out, s.Name)
		}
	}
	return out
}

// CreateStyle adds a style definition. The name must be free, the base
// style (if named) must already exist, the style type must be valid,
// font sizes are bounded to [MinStyleFontSize, MaxStyleFontSize], and
// colors must be 6 hex digits.
func (e *Engine) CreateStyle(in StyleCreate) (domain.Style, error) {
	if _, ok := e.findStyle(in.Name); ok {
		return domain.Style{}, fmt.Errorf("%w: style %q", domain.ErrAlreadyExists, in.Name)
	}
	if in.Type == "" {
		in.Type = domain.StyleTypeParagraph
	}
	if !in.Type.IsValid() {
		return domain.Style{}, fmt.Errorf("%w: style type %q", domain.ErrInvalidInput, in.Type)
	}
	if in.BaseStyle != nil {
		if _, ok := e.findStyle(*in.BaseStyle); !ok {
			return domain.Style{}, fmt.Errorf("%w: base style %q", domain.ErrNotFound, *in.BaseStyle)
		}
	}
	if err := checkStyleAttrs(in.FontSize, in.Color, in.Alignment); err != nil {
		return domain.Style{}, err
	}

	s := domain.Style{
		Name:        in.Name,
		Type:        in.Type,
		BaseStyle:   in.BaseStyle,
		FontName:    in.FontName,
		FontSize:    in.FontSize,
		Bold:        in.Bold,
		Italic:      in.Italic,
		Color:       in.Color,
		Alignment:   in.Alignment,
		LineSpacing: in.LineSpacing,
	}
	e.styles = append(e.styles, s)
	return s.Clone(), nil
}

// UpdateStyle partially updates an existing style definition. Built-in
// styles can be updated; only deletion is disallowed for them.
func (e *Engine) UpdateStyle(name string, update StyleUpdate) (domain.Style, error) {
	i, ok := e.findStyle(name)
	if !ok {
		return domain.Style{}, fmt.Errorf("%w: style %q", domain.ErrNotFound, name)
	}
	if err := checkStyleAttrs(update.FontSize, update.Color, update.Alignment); err != nil {
		return domain.Style{}, err
	}

	s := &e.styles[i]
	if update.FontName != nil {
		s.FontName = update.FontName
	}
	if update.FontSize != nil {
		s.FontSize = update.FontSize
	}
	if update.Bold != nil {
		s.Bold = update.Bold
	}
	if update.Italic != nil {
		s.Italic = update.Italic
	}
	if update.Color != nil {
		s.Color = update.Color
	}
	if update.Alignment != nil {
		s.Alignment = update.Alignment
	}
	if update.LineSpacing != nil {
		s.LineSpacing = update.LineSpacing
	}
	return s.Clone(), nil
}

// DeleteStyle removes a custom style. Built-in styles cannot be
// deleted.
func (e *Engine) DeleteStyle(name string) error {
	i, ok := e.findStyle(name)
	if !ok {
		return fmt.Errorf("%w: style %q", domain.ErrNotFound, name)
	}
	if e.styles[i].BuiltIn {
		return fmt.Errorf("%w: cannot delete built-in style %q", domain.ErrUnsupported, name)
	}
	e.styles = append(e.styles[:i], e.styles[i+1:]...)
	return nil
}

// CopyStyle creates a new style inheriting from source, carrying over
// its font attributes.
func (e *Engine) CopyStyle(sourceName, newName string) (domain.Style, error) {
	i, ok := e.findStyle(sourceName)
	if !ok {
		return domain.Style{}, fmt.Errorf("%w: style %q", domain.ErrNotFound, sourceName)
	}
	src := e.styles[i]
	return e.CreateStyle(StyleCreate{
		Name:      newName,
		Type:      src.Type,
		BaseStyle: &src.Name,
		FontName:  src.FontName,
		FontSize:  src.FontSize,
		Bold:      src.Bold,
		Italic:    src.Italic,
		Color:     src.Color,
	})
}

// ApplyStyleToParagraph sets a paragraph's style reference. Both the
// paragraph and the style must exist.
func (e *Engine) ApplyStyleToParagraph(paragraphIndex int, styleName string) error {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return err
	}
	if _, ok := e.findStyle(styleName); !ok {
		return fmt.Errorf("%w: style %q", domain.ErrNotFound, styleName)
	}
	e.paragraphs[paragraphIndex].Style = &styleName
	return nil
}

// ParagraphStyle returns a paragraph's style name, or nil if unset.
func (e *Engine) ParagraphStyle(paragraphIndex int) (*string, error) {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return nil, err
	}
	p := e.paragraphs[paragraphIndex]
	if p.Style == nil {
		return nil, nil
	}
	name := *p.Style
	return &name, nil
}

func (e *Engine) findStyle(name string) (int, bool) {
	for i := range e.styles {
		if e.styles[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

func checkStyleAttrs(fontSize *int, color *string, alignment *domain.Alignment) error {
	if fontSize != nil && (*fontSize < domain.MinStyleFontSize || *fontSize > domain.MaxStyleFontSize) {
		return fmt.Errorf("%w: font size %d outside [%d, %d]", domain.ErrInvalidInput, *fontSize, domain.MinStyleFontSize, domain.MaxStyleFontSize)
	}
	if color != nil && !domain.ValidColor(*color) {
		return fmt.Errorf("%w: color %q is not a 6-hex-digit RGB string", domain.ErrInvalidInput, *color)
	}
	if alignment != nil && !alignment.IsValid() {
		return fmt.Errorf("%w: alignment %q", domain.ErrInvalidInput, *alignment)
	}
	return nil
}
