package domain

// Match is a single find_text hit. Offset and Length are character
// (rune) positions into the paragraph's concatenated text, not byte
// positions.
type Match struct {
	// ParagraphIndex is the paragraph the hit was found in.
	ParagraphIndex int `json:"paragraph_index"`

	// Offset is the character offset of the hit.
	Offset int `json:"offset"`

	// Length is the character length of the query.
	Length int `json:"length"`

	// Text is the matched slice of the original paragraph text,
	// preserving its case.
	Text string `json:"text"`
}

// SearchOptions controls find and replace behavior.
type SearchOptions struct {
	// CaseSensitive disables case folding before matching.
	CaseSensitive bool `json:"case_sensitive"`

	// WholeWord accepts a hit only when bounded on both sides by a
	// non-alphanumeric character or the string edge.
	WholeWord bool `json:"whole_word"`
}
