package domain

// Bookmark is a named anchor to a paragraph index. Names are unique
// within a document.
type Bookmark struct {
	// Name is the unique bookmark key.
	Name string `json:"name"`

	// ParagraphIndex is the anchored paragraph position.
	ParagraphIndex int `json:"paragraph_index"`
}
