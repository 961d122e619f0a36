// Package engine implements the document edit and annotation engine:
// an addressable paragraph/run body with a parallel table grid, a
// find/replace and formatting layer operating over run boundaries, and
// a tracked-changes plus threaded-comments overlay anchored to
// paragraph indices.
//
// An Engine owns exactly one document's state. All operations are
// synchronous and perform no I/O; loading and serializing bytes is the
// document store collaborator's job. An Engine is not safe for
// concurrent use: callers serialize access, normally through the
// session service's exclusive handles.
package engine

import (
	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// Engine holds one loaded document's body, styles, and annotation
// overlays.
type Engine struct {
	meta       domain.Metadata
	paragraphs []domain.Paragraph
	tables     []domain.Table
	styles     []domain.Style
	revisions  []domain.Revision
	comments   []domain.Comment
	bookmarks  []domain.Bookmark

	nextRevisionID int
	nextCommentID  int
	tracking       bool
}

// builtInStyles ship with every document and cannot be deleted.
func builtInStyles() []domain.Style {
	font := func(name string, size int) (*string, *int) {
		return &name, &size
	}
	boolPtr := func(v bool) *bool { return &v }

	normalFont, normalSize := font("Calibri", 11)
	headingFont, h1Size := font("Calibri Light", 16)
	_, h2Size := font("Calibri Light", 13)
	_, titleSize := font("Calibri Light", 28)

	normal := "Normal"
	return []domain.Style{
		{Name: "Normal", Type: domain.StyleTypeParagraph, BuiltIn: true, FontName: normalFont, FontSize: normalSize},
		{Name: "Title", Type: domain.StyleTypeParagraph, BuiltIn: true, BaseStyle: &normal, FontName: headingFont, FontSize: titleSize},
		{Name: "Heading 1", Type: domain.StyleTypeParagraph, BuiltIn: true, BaseStyle: &normal, FontName: headingFont, FontSize: h1Size},
		{Name: "Heading 2", Type: domain.StyleTypeParagraph, BuiltIn: true, BaseStyle: &normal, FontName: headingFont, FontSize: h2Size},
		{Name: "Quote", Type: domain.StyleTypeParagraph, BuiltIn: true, BaseStyle: &normal, Italic: boolPtr(true)},
		{Name: "Emphasis", Type: domain.StyleTypeCharacter, BuiltIn: true, Italic: boolPtr(true)},
		{Name: "Strong", Type: domain.StyleTypeCharacter, BuiltIn: true, Bold: boolPtr(true)},
		{Name: "Table Grid", Type: domain.StyleTypeTable, BuiltIn: true},
		{Name: "List Bullet", Type: domain.StyleTypeNumbering, BuiltIn: true, BaseStyle: &normal},
		{Name: "List Bullet 2", Type: domain.StyleTypeNumbering, BuiltIn: true, BaseStyle: &normal},
		{Name: "List Bullet 3", Type: domain.StyleTypeNumbering, BuiltIn: true, BaseStyle: &normal},
		{Name: "List Number", Type: domain.StyleTypeNumbering, BuiltIn: true, BaseStyle: &normal},
		{Name: "List Number 2", Type: domain.StyleTypeNumbering, BuiltIn: true, BaseStyle: &normal},
		{Name: "List Number 3", Type: domain.StyleTypeNumbering, BuiltIn: true, BaseStyle: &normal},
	}
}

// New creates an engine for an empty document: no paragraphs, no
// tables, built-in styles only.
func New() *Engine {
	e := &Engine{}
	e.styles = builtInStyles()
	return e
}

// Load creates an engine from a snapshot produced by the document
// store collaborator. The snapshot is value-copied in; built-in styles
// missing from it are seeded, and the revision/comment id counters
// resume past the highest loaded id.
func Load(snap domain.Snapshot) *Engine {
	s := snap.Clone()
	e := &Engine{
		meta:       s.Metadata,
		tracking:   s.Tracking,
		paragraphs: s.Paragraphs,
		tables:     s.Tables,
		styles:     s.Styles,
		revisions:  s.Revisions,
		comments:   s.Comments,
		bookmarks:  s.Bookmarks,
	}

	for _, b := range builtInStyles() {
		if _, ok := e.findStyle(b.Name); !ok {
			e.styles = append(e.styles, b)
		}
	}

	for _, r := range e.revisions {
		if r.ID >= e.nextRevisionID {
			e.nextRevisionID = r.ID + 1
		}
	}
	for _, c := range e.comments {
		if c.ID >= e.nextCommentID {
			e.nextCommentID = c.ID + 1
		}
		for _, reply := range c.Replies {
			if reply.ID >= e.nextCommentID {
				e.nextCommentID = reply.ID + 1
			}
		}
	}

	e.reindexParagraphs()
	e.reindexTables()
	return e
}

// Snapshot returns a value-copy of the full document state for the
// document store collaborator to serialize.
func (e *Engine) Snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Metadata:   e.meta,
		Tracking:   e.tracking,
		Paragraphs: e.paragraphs,
		Tables:     e.tables,
		Styles:     e.styles,
		Revisions:  e.revisions,
		Comments:   e.comments,
		Bookmarks:  e.bookmarks,
	}
	return snap.Clone()
}

// Metadata returns the document core properties.
func (e *Engine) Metadata() domain.Metadata {
	return e.meta
}

// SetMetadata partially updates the document core properties. Nil
// fields in the update are left untouched.
func (e *Engine) SetMetadata(update domain.MetadataUpdate) domain.Metadata {
	if update.Title != nil {
		e.meta.Title = *update.Title
	}
	if update.Author != nil {
		e.meta.Author = *update.Author
	}
	if update.Subject != nil {
		e.meta.Subject = *update.Subject
	}
	if update.Keywords != nil {
		e.meta.Keywords = *update.Keywords
	}
	if update.Comments != nil {
		e.meta.Comments = *update.Comments
	}
	if update.Category != nil {
		e.meta.Category = *update.Category
	}
	return e.meta
}

func (e *Engine) reindexParagraphs() {
	for i := range e.paragraphs {
		e.paragraphs[i].Index = i
	}
}

func (e *Engine) reindexTables() {
	for i := range e.tables {
		e.tables[i].Index = i
	}
}
