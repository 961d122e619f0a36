package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

// newEngineWithText builds an engine holding one paragraph per text.
func newEngineWithText(t *testing.T, texts ...string) *Engine {
	t.Helper()
	e := New()
	for _, text := range texts {
		_, err := e.AddParagraph(text, nil, nil)
		require.NoError(t, err)
	}
	return e
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestNew_EmptyDocument(t *testing.T) {
	e := New()

	assert.Equal(t, 0, e.ParagraphCount())
	assert.Equal(t, 0, e.TableCount())
	assert.Empty(t, e.Revisions())
	assert.Empty(t, e.Comments())
}

func TestNew_SeedsBuiltInStyles(t *testing.T) {
	e := New()

	builtins := e.BuiltInStyles()
	assert.Contains(t, builtins, "Normal")
	assert.Contains(t, builtins, "Title")
	assert.Contains(t, builtins, "Heading 1")
	assert.Contains(t, builtins, "Heading 2")
	assert.Contains(t, builtins, "Table Grid")
	assert.Empty(t, e.CustomStyles())
}

func TestLoad_RoundTripsSnapshot(t *testing.T) {
	e := newEngineWithText(t, "first", "second")
	_, err := e.AddComment("note", "alice", 0, nil, nil)
	require.NoError(t, err)
	_, err = e.AddRevision(domain.RevisionInsert, "bob", 1, nil, strPtr("more"))
	require.NoError(t, err)
	e.EnableTracking()

	loaded := Load(e.Snapshot())

	assert.Equal(t, 2, loaded.ParagraphCount())
	assert.Len(t, loaded.Comments(), 1)
	assert.Len(t, loaded.Revisions(), 1)
	assert.True(t, loaded.TrackingEnabled())
}

func TestLoad_ResumesIDCounters(t *testing.T) {
	e := newEngineWithText(t, "text")
	c, err := e.AddComment("first", "alice", 0, nil, nil)
	require.NoError(t, err)
	r, err := e.AddRevision(domain.RevisionDelete, "alice", 0, nil, nil)
	require.NoError(t, err)

	loaded := Load(e.Snapshot())

	c2, err := loaded.AddComment("second", "bob", 0, nil, nil)
	require.NoError(t, err)
	r2, err := loaded.AddRevision(domain.RevisionDelete, "bob", 0, nil, nil)
	require.NoError(t, err)

	assert.Greater(t, c2.ID, c.ID)
	assert.Greater(t, r2.ID, r.ID)
}

func TestLoad_ResumesIDCountersPastReplyIDs(t *testing.T) {
	e := newEngineWithText(t, "text")
	c, err := e.AddComment("thread", "alice", 0, nil, nil)
	require.NoError(t, err)
	reply, err := e.AddReply(c.ID, "reply", "bob")
	require.NoError(t, err)

	loaded := Load(e.Snapshot())
	c2, err := loaded.AddComment("fresh", "carol", 0, nil, nil)
	require.NoError(t, err)

	assert.Greater(t, c2.ID, reply.ID)
}

func TestLoad_SeedsMissingBuiltInStyles(t *testing.T) {
	snap := domain.Snapshot{
		Paragraphs: []domain.Paragraph{{Runs: []domain.Run{{Text: "hello"}}}},
	}

	e := Load(snap)

	assert.Contains(t, e.BuiltInStyles(), "Normal")
}

func TestSnapshot_IsDetachedCopy(t *testing.T) {
	e := newEngineWithText(t, "original")

	snap := e.Snapshot()
	snap.Paragraphs[0].Runs[0].Text = "mutated"

	p, err := e.Paragraph(0)
	require.NoError(t, err)
	assert.Equal(t, "original", p.Text())
}

func TestSetMetadata_PartialUpdate(t *testing.T) {
	e := New()

	e.SetMetadata(domain.MetadataUpdate{Title: strPtr("Report"), Author: strPtr("alice")})
	meta := e.SetMetadata(domain.MetadataUpdate{Author: strPtr("bob")})

	assert.Equal(t, "Report", meta.Title)
	assert.Equal(t, "bob", meta.Author)
}

func TestTracking_Toggle(t *testing.T) {
	e := New()
	assert.False(t, e.TrackingEnabled())

	e.EnableTracking()
	assert.True(t, e.TrackingEnabled())

	e.DisableTracking()
	assert.False(t, e.TrackingEnabled())
}
