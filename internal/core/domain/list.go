package domain

// MaxListLevel is the deepest accepted list indentation level. Levels
// beyond the styled depth fall back to the base list style.
const MaxListLevel = 8

// ListType distinguishes bullet from numbered lists.
type ListType string

// Available list types.
const (
	ListTypeBullet   ListType = "bullet"
	ListTypeNumbered ListType = "numbered"
)

// IsValid returns true if the list type is recognised.
func (t ListType) IsValid() bool {
	switch t {
	case ListTypeBullet, ListTypeNumbered:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ListType) String() string {
	return string(t)
}

// ListItem is one paragraph of a list run, positioned relative to the
// run's first paragraph.
type ListItem struct {
	// Index is the item's position within the list, starting at 0.
	Index int `json:"index"`

	// Text is the paragraph's concatenated run text.
	Text string `json:"text"`

	// Level is the indentation level derived from the list style.
	Level int `json:"level"`
}

// List is a contiguous run of list-styled paragraphs.
type List struct {
	// ParagraphIndex is the body index of the first item.
	ParagraphIndex int `json:"paragraph_index"`

	// Type reports numbered if any item carries a numbered style.
	Type ListType `json:"list_type"`

	// Items holds the run's items in body order.
	Items []ListItem `json:"items"`
}
