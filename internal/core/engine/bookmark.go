package engine

import (
	"fmt"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// AddBookmark anchors a named bookmark to a paragraph index. Names are
// unique within the document.
func (e *Engine) AddBookmark(name string, paragraphIndex int) (domain.Bookmark, error) {
	if name == "" {
		return domain.Bookmark{}, fmt.Errorf("%w: bookmark name must not be empty", domain.ErrInvalidInput)
	}
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return domain.Bookmark{}, err
	}
	for _, b := range e.bookmarks {
		if b.Name == name {
			return domain.Bookmark{}, fmt.Errorf("%w: bookmark %q", domain.ErrAlreadyExists, name)
		}
	}

	b := domain.Bookmark{Name: name, ParagraphIndex: paragraphIndex}
	e.bookmarks = append(e.bookmarks, b)
	return b, nil
}

// Bookmarks returns all bookmarks in creation order.
func (e *Engine) Bookmarks() []domain.Bookmark {
	out := make([]domain.Bookmark, len(e.bookmarks))
	copy(out, e.bookmarks)
	return out
}

// DeleteBookmark removes a bookmark by name.
func (e *Engine) DeleteBookmark(name string) error {
	for i, b := range e.bookmarks {
		if b.Name == name {
			e.bookmarks = append(e.bookmarks[:i], e.bookmarks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: bookmark %q", domain.ErrNotFound, name)
}
