package domain

import "strings"

// Alignment is a paragraph alignment value.
type Alignment string

// Available paragraph alignments.
const (
	AlignLeft       Alignment = "left"
	AlignCenter     Alignment = "center"
	AlignRight      Alignment = "right"
	AlignJustify    Alignment = "justify"
	AlignDistribute Alignment = "distribute"
)

// IsValid returns true if the alignment is recognised.
func (a Alignment) IsValid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify, AlignDistribute:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (a Alignment) String() string {
	return string(a)
}

// Run is a contiguous span of text within a paragraph sharing one
// formatting set. Boolean attributes are tri-state: a nil pointer means
// "unset, inherit from style", which is distinct from an explicit false.
type Run struct {
	// Text is the run's text content.
	Text string `json:"text"`

	// Bold, Italic, Underline and Strike are tri-state toggles.
	Bold      *bool `json:"bold,omitempty"`
	Italic    *bool `json:"italic,omitempty"`
	Underline *bool `json:"underline,omitempty"`
	Strike    *bool `json:"strike,omitempty"`

	// FontName is the font family, if explicitly set.
	FontName *string `json:"font_name,omitempty"`

	// FontSize is the font size in points, if explicitly set.
	FontSize *int `json:"font_size,omitempty"`

	// Color is a 6-hex-digit RGB string, if explicitly set.
	Color *string `json:"color,omitempty"`

	// Superscript and Subscript are tri-state toggles.
	Superscript *bool `json:"superscript,omitempty"`
	Subscript   *bool `json:"subscript,omitempty"`
}

// Clone returns a deep copy of the run.
func (r Run) Clone() Run {
	out := r
	out.Bold = cloneBool(r.Bold)
	out.Italic = cloneBool(r.Italic)
	out.Underline = cloneBool(r.Underline)
	out.Strike = cloneBool(r.Strike)
	out.FontName = cloneString(r.FontName)
	out.FontSize = cloneInt(r.FontSize)
	out.Color = cloneString(r.Color)
	out.Superscript = cloneBool(r.Superscript)
	out.Subscript = cloneBool(r.Subscript)
	return out
}

// Paragraph is an ordered block of runs. Index is the paragraph's
// 0-based position in the document body; it is contiguous and shifts
// when paragraphs are inserted or deleted before it.
type Paragraph struct {
	// Index is the paragraph's current position in the body.
	Index int `json:"index"`

	// Style is a style name reference, if set.
	Style *string `json:"style,omitempty"`

	// Alignment is the paragraph alignment, if set.
	Alignment *Alignment `json:"alignment,omitempty"`

	// Runs is the ordered run sequence. Runs are owned by their
	// paragraph and never shared.
	Runs []Run `json:"runs"`
}

// Text returns the paragraph's text: the concatenation of its run texts.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Clone returns a deep copy of the paragraph.
func (p Paragraph) Clone() Paragraph {
	out := p
	out.Style = cloneString(p.Style)
	if p.Alignment != nil {
		a := *p.Alignment
		out.Alignment = &a
	}
	out.Runs = make([]Run, len(p.Runs))
	for i, r := range p.Runs {
		out.Runs[i] = r.Clone()
	}
	return out
}

func cloneBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	b := *v
	return &b
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
