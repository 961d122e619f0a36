package domain

import "time"

// RevisionAction is the kind of edit a revision proposes.
type RevisionAction string

// Available revision actions.
const (
	RevisionInsert  RevisionAction = "insert"
	RevisionDelete  RevisionAction = "delete"
	RevisionFormat  RevisionAction = "format"
	RevisionMove    RevisionAction = "move"
	RevisionReplace RevisionAction = "replace"
)

// IsValid returns true if the action is recognised.
func (a RevisionAction) IsValid() bool {
	switch a {
	case RevisionInsert, RevisionDelete, RevisionFormat, RevisionMove, RevisionReplace:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (a RevisionAction) String() string {
	return string(a)
}

// RevisionStatus is the lifecycle state of a revision.
// A revision is created pending and transitions exactly once to
// accepted or rejected; both are terminal.
type RevisionStatus string

// Available revision statuses.
const (
	RevisionPending  RevisionStatus = "pending"
	RevisionAccepted RevisionStatus = "accepted"
	RevisionRejected RevisionStatus = "rejected"
)

// Terminal reports whether the status permits no further transition.
func (s RevisionStatus) Terminal() bool {
	return s == RevisionAccepted || s == RevisionRejected
}

// String returns the string representation.
func (s RevisionStatus) String() string {
	return string(s)
}

// Revision is a recorded edit proposal anchored to a paragraph index.
// The anchor is a raw positional index: paragraph inserts or deletes
// elsewhere in the body silently invalidate it, and no re-anchoring is
// performed.
type Revision struct {
	// ID is a monotonic, engine-scoped identifier.
	ID int `json:"id"`

	// Action is the proposed edit kind.
	Action RevisionAction `json:"action"`

	// Author recorded the revision.
	Author string `json:"author"`

	// ParagraphIndex anchors the revision to a body paragraph.
	ParagraphIndex int `json:"paragraph_index"`

	// OriginalContent and NewContent capture the edit payload.
	OriginalContent *string `json:"original_content,omitempty"`
	NewContent      *string `json:"new_content,omitempty"`

	// Status is the lifecycle state.
	Status RevisionStatus `json:"status"`

	// CreatedAt is when the revision was recorded.
	CreatedAt time.Time `json:"created_at"`

	// ProcessedAt and ProcessedBy are stamped on accept or reject.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	ProcessedBy *string    `json:"processed_by,omitempty"`
}

// Clone returns a deep copy of the revision.
func (r Revision) Clone() Revision {
	out := r
	out.OriginalContent = cloneString(r.OriginalContent)
	out.NewContent = cloneString(r.NewContent)
	if r.ProcessedAt != nil {
		t := *r.ProcessedAt
		out.ProcessedAt = &t
	}
	out.ProcessedBy = cloneString(r.ProcessedBy)
	return out
}

// RevisionStats summarises the revision list by status.
type RevisionStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// ParagraphComparison is the result of comparing two body paragraphs.
type ParagraphComparison struct {
	Index1     int    `json:"index1"`
	Text1      string `json:"text1"`
	Index2     int    `json:"index2"`
	Text2      string `json:"text2"`
	Identical  bool   `json:"identical"`
	LengthDiff int    `json:"length_diff"`
}
