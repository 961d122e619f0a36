package engine

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// FindText scans every paragraph for query and returns all hits in
// document order. Scanning is naive left-to-right over the paragraph's
// concatenated text: after a hit (or a rejected whole-word candidate)
// the next scan starts one character later, so adjacent repeated
// substrings can overlap-match. Offsets are character positions.
func (e *Engine) FindText(query string, opts domain.SearchOptions) []domain.Match {
	if query == "" {
		return nil
	}

	needle := []rune(query)
	if !opts.CaseSensitive {
		needle = []rune(strings.ToLower(query))
	}

	var matches []domain.Match
	for i := range e.paragraphs {
		original := []rune(e.paragraphs[i].Text())
		haystack := original
		if !opts.CaseSensitive {
			haystack = []rune(strings.ToLower(string(original)))
		}

		for start := 0; ; {
			pos := runeIndex(haystack, needle, start)
			if pos < 0 {
				break
			}
			if opts.WholeWord && !wholeWordAt(haystack, pos, len(needle)) {
				start = pos + 1
				continue
			}
			matches = append(matches, domain.Match{
				ParagraphIndex: i,
				Offset:         pos,
				Length:         len(needle),
				Text:           string(original[pos : pos+len(needle)]),
			})
			start = pos + 1
		}
	}
	return matches
}

// ReplaceText substitutes find with replace across the document and
// returns the number of occurrences replaced. Substitution happens per
// run: each run's text is independently scanned, so a match spanning a
// run boundary is never found. That run-granularity limitation is part
// of the contract, not a defect.
//
// The whole-word option only takes effect on the case-insensitive
// path, where substitution goes through a word-anchored pattern; the
// case-sensitive path is a literal substring replace.
func (e *Engine) ReplaceText(find, replace string, opts domain.SearchOptions) int {
	if find == "" {
		return 0
	}

	count := 0
	for pi := range e.paragraphs {
		p := &e.paragraphs[pi]
		for ri := range p.Runs {
			run := &p.Runs[ri]
			if opts.CaseSensitive {
				n := strings.Count(run.Text, find)
				if n > 0 {
					run.Text = strings.ReplaceAll(run.Text, find, replace)
					count += n
				}
				continue
			}

			if !strings.Contains(strings.ToLower(run.Text), strings.ToLower(find)) {
				continue
			}
			pattern := regexp.QuoteMeta(find)
			if opts.WholeWord {
				pattern = `\b` + pattern + `\b`
			}
			re := regexp.MustCompile(`(?i)` + pattern)
			hits := re.FindAllStringIndex(run.Text, -1)
			if len(hits) == 0 {
				continue
			}
			run.Text = re.ReplaceAllLiteralString(run.Text, replace)
			count += len(hits)
		}
	}
	return count
}

// InsertText splices text into a paragraph at a character offset. The
// paragraph's runs are replaced by a single run carrying the combined
// text and the given format; prior per-run formatting is discarded.
func (e *Engine) InsertText(paragraphIndex, offset int, text string, format *domain.TextFormat) error {
	if err := e.checkParagraphIndex(paragraphIndex); err != nil {
		return err
	}

	p := &e.paragraphs[paragraphIndex]
	existing := []rune(p.Text())
	if offset < 0 || offset > len(existing) {
		return fmt.Errorf("%w: offset %d (0-%d)", domain.ErrInvalidInput, offset, len(existing))
	}

	run := domain.Run{Text: string(existing[:offset]) + text + string(existing[offset:])}
	if format != nil {
		if err := applyRunFormat(&run, *format); err != nil {
			return err
		}
	}
	p.Runs = []domain.Run{run}
	return nil
}

// runeIndex returns the first index >= start where needle occurs in
// haystack, or -1.
func runeIndex(haystack, needle []rune, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i+len(needle) <= len(haystack); i++ {
		j := 0
		for ; j < len(needle); j++ {
			if haystack[i+j] != needle[j] {
				break
			}
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}

// wholeWordAt reports whether the hit at pos with the given length is
// bounded on both sides by a non-alphanumeric character or the string
// edge.
func wholeWordAt(text []rune, pos, length int) bool {
	before := pos == 0 || !isWordRune(text[pos-1])
	after := pos+length >= len(text) || !isWordRune(text[pos+length])
	return before && after
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
