package domain

import "time"

// CommentStatus is the lifecycle state of a comment. Unlike revisions,
// the open/resolved transition is freely reversible.
type CommentStatus string

// Available comment statuses.
const (
	CommentOpen     CommentStatus = "open"
	CommentResolved CommentStatus = "resolved"
)

// IsValid returns true if the status is recognised.
func (s CommentStatus) IsValid() bool {
	return s == CommentOpen || s == CommentResolved
}

// String returns the string representation.
func (s CommentStatus) String() string {
	return string(s)
}

// Reply is a threaded reply to a comment. Replies have no independent
// status and cannot be individually edited or deleted.
type Reply struct {
	// ID is drawn from the same engine-scoped sequence as comment ids.
	ID int `json:"id"`

	// Text is the reply content.
	Text string `json:"text"`

	// Author wrote the reply.
	Author string `json:"author"`

	// CreatedAt is when the reply was added.
	CreatedAt time.Time `json:"created_at"`
}

// Comment is an annotation anchored to a paragraph index, optionally
// narrowed to a character-offset span within the paragraph's text.
// Offsets are not validated against run boundaries. The anchor is a
// raw positional index with no re-anchoring on body mutation.
type Comment struct {
	// ID is a monotonic, engine-scoped identifier.
	ID int `json:"id"`

	// Text is the comment content.
	Text string `json:"text"`

	// Author wrote the comment.
	Author string `json:"author"`

	// ParagraphIndex anchors the comment to a body paragraph.
	ParagraphIndex int `json:"paragraph_index"`

	// StartOffset and EndOffset optionally narrow the anchor to a
	// character span within the paragraph's concatenated text.
	StartOffset *int `json:"start_offset,omitempty"`
	EndOffset   *int `json:"end_offset,omitempty"`

	// Status is open or resolved.
	Status CommentStatus `json:"status"`

	// CreatedAt is when the comment was added.
	CreatedAt time.Time `json:"created_at"`

	// Replies is the ordered reply thread.
	Replies []Reply `json:"replies"`
}

// Clone returns a deep copy of the comment.
func (c Comment) Clone() Comment {
	out := c
	out.StartOffset = cloneInt(c.StartOffset)
	out.EndOffset = cloneInt(c.EndOffset)
	out.Replies = make([]Reply, len(c.Replies))
	copy(out.Replies, c.Replies)
	return out
}

// CommentStats summarises the comment list by status.
type CommentStats struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Resolved int `json:"resolved"`
}
