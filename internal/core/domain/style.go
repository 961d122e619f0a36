package domain

// Style font size limits for style definitions. Direct run formatting
// is deliberately not range-checked; see the engine's formatting
// applicator.
const (
	MinStyleFontSize = 6
	MaxStyleFontSize = 144
)

// StyleType classifies what a style applies to.
type StyleType string

// Available style types.
const (
	StyleTypeParagraph StyleType = "paragraph"
	StyleTypeCharacter StyleType = "character"
	StyleTypeTable     StyleType = "table"
	StyleTypeNumbering StyleType = "numbering"
)

// IsValid returns true if the style type is recognised.
func (t StyleType) IsValid() bool {
	switch t {
	case StyleTypeParagraph, StyleTypeCharacter, StyleTypeTable, StyleTypeNumbering:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t StyleType) String() string {
	return string(t)
}

// Style is a named, inheritable bundle of formatting attributes.
// Built-in styles are seeded at load time and cannot be deleted.
type Style struct {
	// Name is the unique style key.
	Name string `json:"name"`

	// Type classifies the style.
	Type StyleType `json:"style_type"`

	// BaseStyle names the style this one inherits from, if any.
	BaseStyle *string `json:"base_style,omitempty"`

	// BuiltIn marks styles that ship with every document.
	BuiltIn bool `json:"built_in"`

	// Font attributes. Nil means inherited.
	FontName *string `json:"font_name,omitempty"`
	FontSize *int    `json:"font_size,omitempty"`
	Bold     *bool   `json:"bold,omitempty"`
	Italic   *bool   `json:"italic,omitempty"`
	Color    *string `json:"color,omitempty"`

	// Paragraph attributes. Nil means inherited.
	Alignment   *Alignment `json:"alignment,omitempty"`
	LineSpacing *float64   `json:"line_spacing,omitempty"`
}

// Clone returns a deep copy of the style.
func (s Style) Clone() Style {
	out := s
	out.BaseStyle = cloneString(s.BaseStyle)
	out.FontName = cloneString(s.FontName)
	out.FontSize = cloneInt(s.FontSize)
	out.Bold = cloneBool(s.Bold)
	out.Italic = cloneBool(s.Italic)
	out.Color = cloneString(s.Color)
	if s.Alignment != nil {
		a := *s.Alignment
		out.Alignment = &a
	}
	if s.LineSpacing != nil {
		ls := *s.LineSpacing
		out.LineSpacing = &ls
	}
	return out
}
