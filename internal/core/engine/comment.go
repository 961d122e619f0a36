package engine

import (
	"fmt"
	"time"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// AddComment anchors a new open comment to a paragraph index,
// optionally narrowed to a character span. Offsets are not validated
// against the paragraph's text or run boundaries, only for
// non-negativity.
func (e *Engine) AddComment(text, author string, paragraphIndex int, startOffset, endOffset *int) (domain.Comment, error) {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return domain.Comment{}, err
	}
	if startOffset != nil && *startOffset < 0 {
		return domain.Comment{}, fmt.Errorf("%w: start offset %d", domain.ErrInvalidInput, *startOffset)
	}
	if endOffset != nil && *endOffset < 0 {
		return domain.Comment{}, fmt.Errorf("%w: end offset %d", domain.ErrInvalidInput, *endOffset)
	}

	c := domain.Comment{
		ID:             e.nextCommentID,
		Text:           text,
		Author:         author,
		ParagraphIndex: paragraphIndex,
		StartOffset:    startOffset,
		EndOffset:      endOffset,
		Status:         domain.CommentOpen,
		CreatedAt:      time.Now(),
	}
	e.nextCommentID++
	e.comments = append(e.comments, c)
	return c.Clone(), nil
}

// Comment returns a copy of the comment with the given id.
func (e *Engine) Comment(id int) (domain.Comment, error) {
	i, ok := e.findComment(id)
	if !ok {
		return domain.Comment{}, fmt.Errorf("%w: comment %d", domain.ErrNotFound, id)
	}
	return e.comments[i].Clone(), nil
}

// Comments returns copies of all comments in creation order.
func (e *Engine) Comments() []domain.Comment {
	out := make([]domain.Comment, len(e.comments))
	for i, c := range e.comments {
		out[i] = c.Clone()
	}
	return out
}

// ParagraphComments returns copies of all comments anchored to one
// paragraph index. The index itself must be valid.
func (e *Engine) ParagraphComments(paragraphIndex int) ([]domain.Comment, error) {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return nil, err
	}
	var out []domain.Comment
	for _, c := range e.comments {
		if c.ParagraphIndex == paragraphIndex {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

// OpenComments returns copies of all unresolved comments.
func (e *Engine) OpenComments() []domain.Comment {
	return e.commentsByStatus(domain.CommentOpen)
}

// ResolvedComments returns copies of all resolved comments.
func (e *Engine) ResolvedComments() []domain.Comment {
	return e.commentsByStatus(domain.CommentResolved)
}

// CommentsByAuthor returns copies of all comments by one author.
func (e *Engine) CommentsByAuthor(author string) []domain.Comment {
	var out []domain.Comment
	for _, c := range e.comments {
		if c.Author == author {
			out = append(out, c.Clone())
		}
	}
	return out
}

// UpdateComment partially updates a comment's text and status. Nil
// fields are left untouched.
func (e *Engine) UpdateComment(id int, text *string, status *domain.CommentStatus) (domain.Comment, error) {
	i, ok := e.findComment(id)
	if !ok {
		return domain.Comment{}, fmt.Errorf("%w: comment %d", domain.ErrNotFound, id)
	}
	if status != nil && !status.IsValid() {
		return domain.Comment{}, fmt.Errorf("%w: comment status %q", domain.ErrInvalidInput, *status)
	}

	c := &e.comments[i]
	if text != nil {
		c.Text = *text
	}
	if status != nil {
		c.Status = *status
	}
	return c.Clone(), nil
}

// ResolveComment marks a comment resolved. The transition is
// unconditional and freely reversible.
func (e *Engine) ResolveComment(id int) (domain.Comment, error) {
	status := domain.CommentResolved
	return e.UpdateComment(id, nil, &status)
}

// ReopenComment marks a comment open again.
func (e *Engine) ReopenComment(id int) (domain.Comment, error) {
	status := domain.CommentOpen
	return e.UpdateComment(id, nil, &status)
}

// AddReply appends a reply to a comment's thread. Reply ids are drawn
// from the same engine-scoped sequence as comment ids.
func (e *Engine) AddReply(commentID int, text, author string) (domain.Reply, error) {
	i, ok := e.findComment(commentID)
	if !ok {
		return domain.Reply{}, fmt.Errorf("%w: comment %d", domain.ErrNotFound, commentID)
	}

	reply := domain.Reply{
		ID:        e.nextCommentID,
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
	}
	e.nextCommentID++
	e.comments[i].Replies = append(e.comments[i].Replies, reply)
	return reply, nil
}

// DeleteComment removes a comment and its entire reply thread.
func (e *Engine) DeleteComment(id int) error {
	i, ok := e.findComment(id)
	if !ok {
		return fmt.Errorf("%w: comment %d", domain.ErrNotFound, id)
	}
	e.comments = append(e.comments[:i], e.comments[i+1:]...)
	return nil
}

// CommentStats summarises the comment list by status.
func (e *Engine) CommentStats() domain.CommentStats {
	stats := domain.CommentStats{Total: len(e.comments)}
	for _, c := range e.comments {
		if c.Status == domain.CommentOpen {
			stats.Open++
		} else {
			stats.Resolved++
		}
	}
	return stats
}

// ClearComments removes every comment, returning the count removed.
// The id counter keeps advancing so cleared ids are never reused.
func (e *Engine) ClearComments() int {
	count := len(e.comments)
	e.comments = nil
	return count
}

func (e *Engine) commentsByStatus(status domain.CommentStatus) []domain.Comment {
	var out []domain.Comment
	for _, c := range e.comments {
		if c.Status == status {
			out = append(out, c.Clone())
		}
	}
	return out
}

func (e *Engine) findComment(id int) (int, bool) {
	for i := range e.comments {
		if e.comments[i].ID == id {
			return i, true
		}
	}
	return 0, false
}
