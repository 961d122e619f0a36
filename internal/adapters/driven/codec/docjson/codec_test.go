package docjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

func sampleSnapshot() domain.Snapshot {
	align := domain.AlignCenter
	return domain.Snapshot{
		Metadata: domain.Metadata{Title: "Quarterly Report", Author: "alice"},
		Tracking: true,
		Paragraphs: []domain.Paragraph{
			{Index: 0, Runs: []domain.Run{{Text: "Hello "}, {Text: "world"}}, Alignment: &align},
		},
		Tables: []domain.Table{
			{Index: 0, Cells: [][]domain.Cell{
				{{Row: 0, Col: 0, Text: "a", RowSpan: 1, ColSpan: 1}},
			}},
		},
		Styles: []domain.Style{
			{Name: "Normal", Type: domain.StyleTypeParagraph, BuiltIn: true},
		},
		Comments: []domain.Comment{
			{ID: 0, Text: "note", Author: "bob", Status: domain.CommentOpen},
		},
		Bookmarks: []domain.Bookmark{{Name: "intro", ParagraphIndex: 0}},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := New()
	snap := sampleSnapshot()

	data, err := c.Encode(snap)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	decoded, err := c.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "Quarterly Report", decoded.Metadata.Title)
	assert.True(t, decoded.Tracking)
	require.Len(t, decoded.Paragraphs, 1)
	assert.Equal(t, "Hello world", decoded.Paragraphs[0].Text())
	require.Len(t, decoded.Comments, 1)
	assert.Equal(t, domain.CommentOpen, decoded.Comments[0].Status)
	require.Len(t, decoded.Bookmarks, 1)
}

func TestCodec_Decode(t *testing.T) {
	t.Run("malformed JSON", func(t *testing.T) {
		c := New()

		_, err := c.Decode([]byte("{not json"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unsupported version", func(t *testing.T) {
		c := New()

		_, err := c.Decode([]byte(`{"version": 99, "document": {}}`))
		assert.ErrorIs(t, err, domain.ErrUnsupported)
	})

	t.Run("missing version", func(t *testing.T) {
		c := New()

		_, err := c.Decode([]byte(`{"document": {}}`))
		assert.ErrorIs(t, err, domain.ErrUnsupported)
	})

	t.Run("invalid paragraph alignment", func(t *testing.T) {
		c := New()
		data := []byte(`{
			"version": 1,
			"document": {
				"paragraphs": [{"runs": [{"text": "x"}], "alignment": "sideways"}]
			}
		}`)

		_, err := c.Decode(data)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("ragged table grid", func(t *testing.T) {
		c := New()
		data := []byte(`{
			"version": 1,
			"document": {
				"tables": [{"cells": [
					[{"row": 0, "col": 0}, {"row": 0, "col": 1}],
					[{"row": 1, "col": 0}]
				]}]
			}
		}`)

		_, err := c.Decode(data)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid revision action", func(t *testing.T) {
		c := New()
		data := []byte(`{
			"version": 1,
			"document": {
				"revisions": [{"id": 0, "action": "rewrite", "status": "pending"}]
			}
		}`)

		_, err := c.Decode(data)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid comment status", func(t *testing.T) {
		c := New()
		data := []byte(`{
			"version": 1,
			"document": {
				"comments": [{"id": 0, "status": "archived"}]
			}
		}`)

		_, err := c.Decode(data)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty document is valid", func(t *testing.T) {
		c := New()

		snap, err := c.Decode([]byte(`{"version": 1, "document": {}}`))
		require.NoError(t, err)
		assert.Empty(t, snap.Paragraphs)
	})
}

func TestDecodeOperations(t *testing.T) {
	t.Run("decodes a mixed batch", func(t *testing.T) {
		data := []byte(`[
			{"op": "add_paragraph", "params": {"text": "hello", "style": "Normal"}},
			{"op": "replace_text", "params": {"find": "a", "replace": "b", "options": {"case_sensitive": true}}},
			{"op": "delete_paragraph", "params": {"index": 2}},
			{"op": "set_metadata", "params": {"update": {"title": "Doc"}}}
		]`)

		ops, err := DecodeOperations(data)
		require.NoError(t, err)
		require.Len(t, ops, 4)

		add, ok := ops[0].(domain.AddParagraphOp)
		require.True(t, ok)
		assert.Equal(t, "hello", add.Text)
		require.NotNil(t, add.Style)
		assert.Equal(t, "Normal", *add.Style)

		repl, ok := ops[1].(domain.ReplaceTextOp)
		require.True(t, ok)
		assert.True(t, repl.Options.CaseSensitive)

		del, ok := ops[2].(domain.DeleteParagraphOp)
		require.True(t, ok)
		assert.Equal(t, 2, del.Index)

		meta, ok := ops[3].(domain.SetMetadataOp)
		require.True(t, ok)
		require.NotNil(t, meta.Update.Title)
		assert.Equal(t, "Doc", *meta.Update.Title)
	})

	t.Run("missing params decodes zero-value operation", func(t *testing.T) {
		ops, err := DecodeOperations([]byte(`[{"op": "add_paragraph"}]`))
		require.NoError(t, err)
		require.Len(t, ops, 1)

		add, ok := ops[0].(domain.AddParagraphOp)
		require.True(t, ok)
		assert.Equal(t, "", add.Text)
	})

	t.Run("unknown operation fails the whole decode", func(t *testing.T) {
		data := []byte(`[
			{"op": "add_paragraph", "params": {"text": "ok"}},
			{"op": "explode", "params": {}}
		]`)

		_, err := DecodeOperations(data)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.ErrorContains(t, err, "batch step 1")
	})

	t.Run("malformed params", func(t *testing.T) {
		data := []byte(`[{"op": "delete_paragraph", "params": {"index": "two"}}]`)

		_, err := DecodeOperations(data)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := DecodeOperations([]byte(`{"op": "add_paragraph"}`))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("empty array", func(t *testing.T) {
		ops, err := DecodeOperations([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, ops)
	})
}
