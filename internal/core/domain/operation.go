package domain

// Operation is a single batch edit step. The set of operations is a
// closed sum type: each variant carries its typed parameters and the
// engine matches the set exhaustively, so there is no "unknown
// operation" failure mode at run time.
//
// Implementations live in this package only; the sealed marker method
// keeps the set closed.
type Operation interface {
	// Name is the operation's wire name, used in result records.
	Name() string

	sealedOp()
}

// AddParagraphOp appends a paragraph to the body.
type AddParagraphOp struct {
	Text      string     `json:"text"`
	Style     *string    `json:"style,omitempty"`
	Alignment *Alignment `json:"alignment,omitempty"`
}

// InsertParagraphOp inserts a paragraph at an index, shifting
// subsequent paragraphs by one.
type InsertParagraphOp struct {
	Index     int        `json:"index"`
	Text      string     `json:"text"`
	Style     *string    `json:"style,omitempty"`
	Alignment *Alignment `json:"alignment,omitempty"`
}

// UpdateParagraphOp partially updates a paragraph. A non-nil Text
// replaces all runs with a single unformatted run.
type UpdateParagraphOp struct {
	Index     int        `json:"index"`
	Text      *string    `json:"text,omitempty"`
	Style     *string    `json:"style,omitempty"`
	Alignment *Alignment `json:"alignment,omitempty"`
}

// DeleteParagraphOp removes a paragraph, shifting subsequent
// paragraphs back by one.
type DeleteParagraphOp struct {
	Index int `json:"index"`
}

// ReplaceTextOp substitutes text document-wide at run granularity.
type ReplaceTextOp struct {
	Find    string        `json:"find"`
	Replace string        `json:"replace"`
	Options SearchOptions `json:"options"`
}

// InsertTextOp splices text into a paragraph at a character offset,
// collapsing the paragraph to a single run.
type InsertTextOp struct {
	ParagraphIndex int         `json:"paragraph_index"`
	Offset         int         `json:"offset"`
	Text           string      `json:"text"`
	Format         *TextFormat `json:"format,omitempty"`
}

// FormatRunOp applies a partial format to one run.
type FormatRunOp struct {
	ParagraphIndex int        `json:"paragraph_index"`
	RunIndex       int        `json:"run_index"`
	Format         TextFormat `json:"format"`
}

// AddTableOp appends a table with optional cell data.
type AddTableOp struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Style *string    `json:"style,omitempty"`
	Data  [][]string `json:"data,omitempty"`
}

// SetCellOp sets one table cell's text.
type SetCellOp struct {
	TableIndex int    `json:"table_index"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Text       string `json:"text"`
}

// SetMetadataOp partially updates the document core properties.
type SetMetadataOp struct {
	Update MetadataUpdate `json:"update"`
}

// Name implements Operation.
func (AddParagraphOp) Name() string { return "add_paragraph" }

// Name implements Operation.
func (InsertParagraphOp) Name() string { return "insert_paragraph" }

// Name implements Operation.
func (UpdateParagraphOp) Name() string { return "update_paragraph" }

// Name implements Operation.
func (DeleteParagraphOp) Name() string { return "delete_paragraph" }

// Name implements Operation.
func (ReplaceTextOp) Name() string { return "replace_text" }

// Name implements Operation.
func (InsertTextOp) Name() string { return "insert_text" }

// Name implements Operation.
func (FormatRunOp) Name() string { return "format_run" }

// Name implements Operation.
func (AddTableOp) Name() string { return "add_table" }

// Name implements Operation.
func (SetCellOp) Name() string { return "set_cell" }

// Name implements Operation.
func (SetMetadataOp) Name() string { return "set_metadata" }

func (AddParagraphOp) sealedOp()    {}
func (InsertParagraphOp) sealedOp() {}
func (UpdateParagraphOp) sealedOp() {}
func (DeleteParagraphOp) sealedOp() {}
func (ReplaceTextOp) sealedOp()     {}
func (InsertTextOp) sealedOp()      {}
func (FormatRunOp) sealedOp()       {}
func (AddTableOp) sealedOp()        {}
func (SetCellOp) sealedOp()         {}
func (SetMetadataOp) sealedOp()     {}

// OperationResult is the per-item outcome of a batch step. Batch
// execution converts per-item failures into result records and
// continues; the original failure kind stays attached via Err.
type OperationResult struct {
	// Index is the operation's position in the batch.
	Index int `json:"index"`

	// Operation is the step's wire name.
	Operation string `json:"operation"`

	// Value is the operation's result payload, when it succeeded.
	Value any `json:"value,omitempty"`

	// Err is the step's failure, if any. It wraps one of the domain
	// error sentinels.
	Err error `json:"-"`
}

// OK reports whether the step succeeded.
func (r OperationResult) OK() bool {
	return r.Err == nil
}
