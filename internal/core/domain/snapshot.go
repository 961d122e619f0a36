package domain

// Metadata is the document's core properties. All fields are optional;
// updates have partial semantics.
type Metadata struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Keywords string `json:"keywords,omitempty"`
	Comments string `json:"comments,omitempty"`
	Category string `json:"category,omitempty"`
}

// MetadataUpdate is a partial metadata change; nil fields are left
// untouched.
type MetadataUpdate struct {
	Title    *string `json:"title,omitempty"`
	Author   *string `json:"author,omitempty"`
	Subject  *string `json:"subject,omitempty"`
	Keywords *string `json:"keywords,omitempty"`
	Comments *string `json:"comments,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Snapshot is the full value-copy of a document's state: the body
// content plus the annotation overlays. The document store collaborator
// loads bytes into a snapshot and serializes a snapshot back out; the
// engine itself never sees a file or stream.
type Snapshot struct {
	Metadata   Metadata    `json:"metadata"`
	Tracking   bool        `json:"tracking,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
	Tables     []Table     `json:"tables,omitempty"`
	Styles     []Style     `json:"styles,omitempty"`
	Revisions  []Revision  `json:"revisions,omitempty"`
	Comments   []Comment   `json:"comments,omitempty"`
	Bookmarks  []Bookmark  `json:"bookmarks,omitempty"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Paragraphs = make([]Paragraph, len(s.Paragraphs))
	for i, p := range s.Paragraphs {
		out.Paragraphs[i] = p.Clone()
	}
	out.Tables = make([]Table, len(s.Tables))
	for i, t := range s.Tables {
		out.Tables[i] = t.Clone()
	}
	out.Styles = make([]Style, len(s.Styles))
	for i, st := range s.Styles {
		out.Styles[i] = st.Clone()
	}
	out.Revisions = make([]Revision, len(s.Revisions))
	for i, r := range s.Revisions {
		out.Revisions[i] = r.Clone()
	}
	out.Comments = make([]Comment, len(s.Comments))
	for i, c := range s.Comments {
		out.Comments[i] = c.Clone()
	}
	out.Bookmarks = make([]Bookmark, len(s.Bookmarks))
	copy(out.Bookmarks, s.Bookmarks)
	return out
}
