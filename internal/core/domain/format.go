package domain

// TextFormat is a partial formatting request. Each nil field is left
// untouched when the format is applied; present fields overwrite the
// corresponding attribute. This gives partial-update semantics rather
// than full replacement.
type TextFormat struct {
	Bold        *bool   `json:"bold,omitempty"`
	Italic      *bool   `json:"italic,omitempty"`
	Underline   *bool   `json:"underline,omitempty"`
	Strike      *bool   `json:"strike,omitempty"`
	FontName    *string `json:"font_name,omitempty"`
	FontSize    *int    `json:"font_size,omitempty"`
	Color       *string `json:"color,omitempty"`
	Superscript *bool   `json:"superscript,omitempty"`
	Subscript   *bool   `json:"subscript,omitempty"`
}

// IsZero returns true if no field is set.
func (f TextFormat) IsZero() bool {
	return f.Bold == nil && f.Italic == nil && f.Underline == nil &&
		f.Strike == nil && f.FontName == nil && f.FontSize == nil &&
		f.Color == nil && f.Superscript == nil && f.Subscript == nil
}

// ValidColor reports whether s is a 6-hex-digit RGB color string.
func ValidColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
