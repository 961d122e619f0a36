package engine

import (
	"fmt"
	"strings"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// MultilevelItem is one entry of a multi-level list: its text and
// indentation level.
type MultilevelItem struct {
	Text  string
	Level int
}

// Lists ride entirely on style names: a paragraph is a list item when
// it carries a "List Bullet"/"List Number" style, with " 2"/" 3"
// suffixes for deeper levels. No separate list structure is stored.

// CreateBulletList appends one bullet item per text and returns the
// body index of the first item.
func (e *Engine) CreateBulletList(items []string) (int, error) {
	return e.createList(items, domain.ListTypeBullet)
}

// CreateNumberedList appends one numbered item per text and returns
// the body index of the first item.
func (e *Engine) CreateNumberedList(items []string) (int, error) {
	return e.createList(items, domain.ListTypeNumbered)
}

func (e *Engine) createList(items []string, listType domain.ListType) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: list needs at least one item", domain.ErrInvalidInput)
	}

	start := len(e.paragraphs)
	style := listStyleName(listType, 0)
	for _, text := range items {
		if _, err := e.AddParagraph(text, &style, nil); err != nil {
			return 0, err
		}
	}
	return start, nil
}

// CreateMultilevelList appends bullet items at per-item indentation
// levels and returns the body index of the first item.
func (e *Engine) CreateMultilevelList(items []MultilevelItem) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: list needs at least one item", domain.ErrInvalidInput)
	}
	for _, item := range items {
		if item.Level < 0 || item.Level > domain.MaxListLevel {
			return 0, fmt.Errorf("%w: list level %d outside [0, %d]", domain.ErrInvalidInput, item.Level, domain.MaxListLevel)
		}
	}

	start := len(e.paragraphs)
	for _, item := range items {
		style := e.leveledListStyle(domain.ListTypeBullet, item.Level)
		if _, err := e.AddParagraph(item.Text, &style, nil); err != nil {
			return 0, err
		}
	}
	return start, nil
}

// AddListItem appends a single list item at the given indentation
// level and returns its body index. Levels deeper than the styled
// depth fall back to the base list style.
func (e *Engine) AddListItem(text string, listType domain.ListType, level int) (int, error) {
	if !listType.IsValid() {
		return 0, fmt.Errorf("%w: list type %q", domain.ErrInvalidInput, listType)
	}
	if level < 0 || level > domain.MaxListLevel {
		return 0, fmt.Errorf("%w: list level %d outside [0, %d]", domain.ErrInvalidInput, level, domain.MaxListLevel)
	}

	style := e.leveledListStyle(listType, level)
	return e.AddParagraph(text, &style, nil)
}

// ConvertToList turns an existing paragraph into a level-0 list item.
func (e *Engine) ConvertToList(paragraphIndex int, listType domain.ListType) error {
	if !listType.IsValid() {
		return fmt.Errorf("%w: list type %q", domain.ErrInvalidInput, listType)
	}
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return err
	}

	style := listStyleName(listType, 0)
	e.paragraphs[paragraphIndex].Style = &style
	return nil
}

// RemoveListFormatting reverts a paragraph to the Normal style.
func (e *Engine) RemoveListFormatting(paragraphIndex int) error {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return err
	}

	style := "Normal"
	e.paragraphs[paragraphIndex].Style = &style
	return nil
}

// ChangeListType switches a list item between bullet and numbered,
// keeping its indentation level. Non-list paragraphs become level-0
// items of the new type.
func (e *Engine) ChangeListType(paragraphIndex int, listType domain.ListType) error {
	if !listType.IsValid() {
		return fmt.Errorf("%w: list type %q", domain.ErrInvalidInput, listType)
	}
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return err
	}

	p := &e.paragraphs[paragraphIndex]
	style := listStyleName(listType, listLevel(p.Style))
	p.Style = &style
	return nil
}

// IndentListItem deepens a list item by one level, up to the styled
// depth. Non-list paragraphs are left untouched.
func (e *Engine) IndentListItem(paragraphIndex int) error {
	return e.shiftListLevel(paragraphIndex, 1)
}

// OutdentListItem raises a list item by one level, down to level 0.
// Non-list paragraphs are left untouched.
func (e *Engine) OutdentListItem(paragraphIndex int) error {
	return e.shiftListLevel(paragraphIndex, -1)
}

func (e *Engine) shiftListLevel(paragraphIndex, delta int) error {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return err
	}

	p := &e.paragraphs[paragraphIndex]
	listType, ok := listTypeOf(p.Style)
	if !ok {
		return nil
	}

	level := listLevel(p.Style) + delta
	if level < 0 || level > maxStyledListLevel {
		return nil
	}
	style := listStyleName(listType, level)
	p.Style = &style
	return nil
}

// ListItems collects the contiguous run of list items starting at
// startIndex. A nil endIndex runs to the end of the body; the walk
// stops early at the first non-list paragraph. The list reports
// numbered if any item carries a numbered style.
func (e *Engine) ListItems(startIndex int, endIndex *int) (domain.List, error) {
	if err := e.checkParagraphIndex(startIndex); err != nil {
		return domain.List{}, err
	}

	end := len(e.paragraphs)
	if endIndex != nil && *endIndex < end {
		end = *endIndex
	}

	list := domain.List{ParagraphIndex: startIndex, Type: domain.ListTypeBullet}
	for i := startIndex; i < end; i++ {
		p := e.paragraphs[i]
		listType, ok := listTypeOf(p.Style)
		if !ok {
			break
		}
		if listType == domain.ListTypeNumbered {
			list.Type = domain.ListTypeNumbered
		}
		list.Items = append(list.Items, domain.ListItem{
			Index: i - startIndex,
			Text:  p.Text(),
			Level: listLevel(p.Style),
		})
	}
	return list, nil
}

// maxStyledListLevel is the deepest level with a dedicated built-in
// style ("List Bullet 3" / "List Number 3").
const maxStyledListLevel = 2

func listBaseName(t domain.ListType) string {
	if t == domain.ListTypeNumbered {
		return "List Number"
	}
	return "List Bullet"
}

// listStyleName maps a type and level to the style name carrying it:
// level 0 is the base name, deeper levels append " 2", " 3", ...
func listStyleName(t domain.ListType, level int) string {
	if level <= 0 {
		return listBaseName(t)
	}
	return fmt.Sprintf("%s %d", listBaseName(t), level+1)
}

// leveledListStyle resolves the style for a level, falling back to the
// base list style when no style of that depth is registered.
func (e *Engine) leveledListStyle(t domain.ListType, level int) string {
	name := listStyleName(t, level)
	if _, ok := e.findStyle(name); ok {
		return name
	}
	return listBaseName(t)
}

func listTypeOf(style *string) (domain.ListType, bool) {
	switch {
	case style == nil:
		return "", false
	case strings.HasPrefix(*style, "List Number"):
		return domain.ListTypeNumbered, true
	case strings.HasPrefix(*style, "List Bullet"):
		return domain.ListTypeBullet, true
	default:
		return "", false
	}
}

func listLevel(style *string) int {
	if style == nil {
		return 0
	}
	switch {
	case strings.HasSuffix(*style, " 3"):
		return 2
	case strings.HasSuffix(*style, " 2"):
		return 1
	default:
		return 0
	}
}
