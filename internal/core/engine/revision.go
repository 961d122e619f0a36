package engine

import (
	"fmt"
	"time"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// TrackingEnabled reports whether revision tracking is on.
func (e *Engine) TrackingEnabled() bool {
	return e.tracking
}

// EnableTracking turns revision tracking on.
func (e *Engine) EnableTracking() {
	e.tracking = true
}

// DisableTracking turns revision tracking off.
func (e *Engine) DisableTracking() {
	e.tracking = false
}

// AddRevision records a pending revision anchored to a paragraph
// index. The index must be valid at record time; it may go stale if
// the body mutates afterwards.
func (e *Engine) AddRevision(action domain.RevisionAction, author string, paragraphIndex int, originalContent, newContent *string) (domain.Revision, error) {
	if !action.IsValid() {
		return domain.Revision{}, fmt.Errorf("%w: revision action %q", domain.ErrInvalidInput, action)
	}
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return domain.Revision{}, err
	}

	r := domain.Revision{
		ID:              e.nextRevisionID,
		Action:          action,
		Author:          author,
		ParagraphIndex:  paragraphIndex,
		OriginalContent: originalContent,
		NewContent:      newContent,
		Status:          domain.RevisionPending,
		CreatedAt:       time.Now(),
	}
	e.nextRevisionID++
	e.revisions = append(e.revisions, r)
	return r.Clone(), nil
}

// Revision returns a copy of the revision with the given id.
func (e *Engine) Revision(id int) (domain.Revision, error) {
	i, ok := e.findRevision(id)
	if !ok {
		return domain.Revision{}, fmt.Errorf("%w: revision %d", domain.ErrNotFound, id)
	}
	return e.revisions[i].Clone(), nil
}

// Revisions returns copies of all revisions in record order.
func (e *Engine) Revisions() []domain.Revision {
	out := make([]domain.Revision, len(e.revisions))
	for i, r := range e.revisions {
		out[i] = r.Clone()
	}
	return out
}

// PendingRevisions returns copies of all revisions still pending.
func (e *Engine) PendingRevisions() []domain.Revision {
	var out []domain.Revision
	for _, r := range e.revisions {
		if r.Status == domain.RevisionPending {
			out = append(out, r.Clone())
		}
	}
	return out
}

// RevisionsByAuthor returns copies of all revisions by one author.
func (e *Engine) RevisionsByAuthor(author string) []domain.Revision {
	var out []domain.Revision
	for _, r := range e.revisions {
		if r.Author == author {
			out = append(out, r.Clone())
		}
	}
	return out
}

// RevisionsByAction returns copies of all revisions of one action kind.
func (e *Engine) RevisionsByAction(action domain.RevisionAction) []domain.Revision {
	var out []domain.Revision
	for _, r := range e.revisions {
		if r.Action == action {
			out = append(out, r.Clone())
		}
	}
	return out
}

// AcceptRevision accepts a pending revision and applies its effect to
// the body. Insert appends the new content as a run; delete clears the
// paragraph's runs; replace clears them and inserts a single run of
// the new content; format and move are recorded but apply no body
// mutation.
//
// All preconditions are checked before any state changes: a revision
// that is no longer pending fails with an invalid-state error, and a
// revision whose anchor went stale fails with an index error, leaving
// the revision pending.
func (e *Engine) AcceptRevision(id int, acceptedBy string) (domain.Revision, error) {
	i, ok := e.findRevision(id)
	if !ok {
		return domain.Revision{}, fmt.Errorf("%w: revision %d", domain.ErrNotFound, id)
	}
	r := &e.revisions[i]
	if r.Status.Terminal() {
		return domain.Revision{}, fmt.Errorf("%w: revision %d has already been processed", domain.ErrInvalidState, id)
	}
	if err := e.checkParagraphIndex(r.ParagraphIndex); err != nil {
		return domain.Revision{}, err
	}

	now := time.Now()
	r.Status = domain.RevisionAccepted
	r.ProcessedAt = &now
	r.ProcessedBy = &acceptedBy
	e.applyRevision(*r)
	return r.Clone(), nil
}

// RejectRevision rejects a pending revision. The body is never
// touched.
func (e *Engine) RejectRevision(id int, rejectedBy string) (domain.Revision, error) {
	i, ok := e.findRevision(id)
	if !ok {
		return domain.Revision{}, fmt.Errorf("%w: revision %d", domain.ErrNotFound, id)
	}
	r := &e.revisions[i]
	if r.Status.Terminal() {
		return domain.Revision{}, fmt.Errorf("%w: revision %d has already been processed", domain.ErrInvalidState, id)
	}

	now := time.Now()
	r.Status = domain.RevisionRejected
	r.ProcessedAt = &now
	r.ProcessedBy = &rejectedBy
	return r.Clone(), nil
}

// AcceptAllRevisions accepts every currently-pending revision,
// counting successes. Revisions that fail individually (stale anchor,
// processed concurrently) are skipped, not fatal.
func (e *Engine) AcceptAllRevisions(acceptedBy string) int {
	count := 0
	for _, r := range e.PendingRevisions() {
		if _, err := e.AcceptRevision(r.ID, acceptedBy); err == nil {
			count++
		}
	}
	return count
}

// RejectAllRevisions rejects every currently-pending revision,
// counting successes.
func (e *Engine) RejectAllRevisions(rejectedBy string) int {
	count := 0
	for _, r := range e.PendingRevisions() {
		if _, err := e.RejectRevision(r.ID, rejectedBy); err == nil {
			count++
		}
	}
	return count
}

// RevisionStats summarises the revision list by status.
func (e *Engine) RevisionStats() domain.RevisionStats {
	stats := domain.RevisionStats{Total: len(e.revisions)}
	for _, r := range e.revisions {
		switch r.Status {
		case domain.RevisionPending:
			stats.Pending++
		case domain.RevisionAccepted:
			stats.Accepted++
		case domain.RevisionRejected:
			stats.Rejected++
		}
	}
	return stats
}

// CompareParagraphs compares the text of two body paragraphs.
func (e *Engine) CompareParagraphs(index1, index2 int) (domain.ParagraphComparison, error) {
	if err := e.checkParagraphIndex(index1); err != nil {
		return domain.ParagraphComparison{}, err
	}
	if err := e.checkParagraphIndex(index2); err != nil {
		return domain.ParagraphComparison{}, err
	}

	text1 := e.paragraphs[index1].Text()
	text2 := e.paragraphs[index2].Text()
	return domain.ParagraphComparison{
		Index1:     index1,
		Text1:      text1,
		Index2:     index2,
		Text2:      text2,
		Identical:  text1 == text2,
		LengthDiff: len([]rune(text2)) - len([]rune(text1)),
	}, nil
}

// ClearRevisions drops the whole revision history and resets the id
// counter, returning the number of revisions cleared.
func (e *Engine) ClearRevisions() int {
	count := len(e.revisions)
	e.revisions = nil
	e.nextRevisionID = 0
	return count
}

func (e *Engine) findRevision(id int) (int, bool) {
	for i := range e.revisions {
		if e.revisions[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (e *Engine) applyRevision(r domain.Revision) {
	p := &e.paragraphs[r.ParagraphIndex]

	switch r.Action {
	case domain.RevisionInsert:
		if r.NewContent != nil && *r.NewContent != "" {
			p.Runs = append(p.Runs, domain.Run{Text: *r.NewContent})
		}
	case domain.RevisionDelete:
		p.Runs = nil
	case domain.RevisionReplace:
		if r.NewContent != nil && *r.NewContent != "" {
			p.Runs = []domain.Run{{Text: *r.NewContent}}
		}
	case domain.RevisionFormat, domain.RevisionMove:
		// Recorded but with no defined body mutation.
	}
}
