package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

func TestAddComment(t *testing.T) {
	t.Run("anchors an open comment", func(t *testing.T) {
		e := newEngineWithText(t, "body")

		c, err := e.AddComment("needs a source", "alice", 0, intPtr(2), intPtr(6))
		require.NoError(t, err)

		assert.Equal(t, domain.CommentOpen, c.Status)
		assert.Equal(t, "alice", c.Author)
		assert.Equal(t, 0, c.ParagraphIndex)
		require.NotNil(t, c.StartOffset)
		assert.Equal(t, 2, *c.StartOffset)
		assert.False(t, c.CreatedAt.IsZero())
	})

	t.Run("rejects out-of-range paragraph", func(t *testing.T) {
		e := New()

		_, err := e.AddComment("text", "alice", 0, nil, nil)
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	})

	t.Run("rejects negative offsets", func(t *testing.T) {
		e := newEngineWithText(t, "body")

		_, err := e.AddComment("text", "alice", 0, intPtr(-1), nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = e.AddComment("text", "alice", 0, nil, intPtr(-2))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("offsets beyond the text are accepted", func(t *testing.T) {
		e := newEngineWithText(t, "ab")

		_, err := e.AddComment("text", "alice", 0, intPtr(0), intPtr(100))
		assert.NoError(t, err)
	})
}

func TestResolveAndReopenComment(t *testing.T) {
	e := newEngineWithText(t, "body")
	c, err := e.AddComment("open me", "alice", 0, nil, nil)
	require.NoError(t, err)

	resolved, err := e.ResolveComment(c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CommentResolved, resolved.Status)

	// Resolution is freely reversible, any number of times.
	reopened, err := e.ReopenComment(c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CommentOpen, reopened.Status)

	_, err = e.ResolveComment(c.ID)
	require.NoError(t, err)
	assert.Len(t, e.ResolvedComments(), 1)
	assert.Empty(t, e.OpenComments())
}

func TestUpdateComment(t *testing.T) {
	t.Run("updates text only", func(t *testing.T) {
		e := newEngineWithText(t, "body")
		c, err := e.AddComment("draft", "alice", 0, nil, nil)
		require.NoError(t, err)

		updated, err := e.UpdateComment(c.ID, strPtr("final"), nil)
		require.NoError(t, err)

		assert.Equal(t, "final", updated.Text)
		assert.Equal(t, domain.CommentOpen, updated.Status)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		e := newEngineWithText(t, "body")
		c, err := e.AddComment("draft", "alice", 0, nil, nil)
		require.NoError(t, err)

		bad := domain.CommentStatus("archived")
		_, err = e.UpdateComment(c.ID, nil, &bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown id", func(t *testing.T) {
		e := newEngineWithText(t, "body")

		_, err := e.UpdateComment(42, strPtr("x"), nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAddReply(t *testing.T) {
	t.Run("appends to the thread", func(t *testing.T) {
		e := newEngineWithText(t, "body")
		c, err := e.AddComment("question", "alice", 0, nil, nil)
		require.NoError(t, err)

		reply, err := e.AddReply(c.ID, "answer", "bob")
		require.NoError(t, err)
		assert.Equal(t, "bob", reply.Author)

		got, err := e.Comment(c.ID)
		require.NoError(t, err)
		require.Len(t, got.Replies, 1)
		assert.Equal(t, "answer", got.Replies[0].Text)
	})

	t.Run("reply ids share the comment sequence", func(t *testing.T) {
		e := newEngineWithText(t, "body")
		c, err := e.AddComment("thread", "alice", 0, nil, nil)
		require.NoError(t, err)

		reply, err := e.AddReply(c.ID, "first reply", "bob")
		require.NoError(t, err)
		c2, err := e.AddComment("another", "carol", 0, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, c.ID+1, reply.ID)
		assert.Equal(t, reply.ID+1, c2.ID)
	})

	t.Run("unknown comment", func(t *testing.T) {
		e := newEngineWithText(t, "body")

		_, err := e.AddReply(7, "text", "bob")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	e := newEngineWithText(t, "body")
	c, err := e.AddComment("thread", "alice", 0, nil, nil)
	require.NoError(t, err)
	_, err = e.AddReply(c.ID, "reply", "bob")
	require.NoError(t, err)

	require.NoError(t, e.DeleteComment(c.ID))

	assert.Empty(t, e.Comments())
	assert.ErrorIs(t, e.DeleteComment(c.ID), domain.ErrNotFound)
}

func TestCommentQueries(t *testing.T) {
	e := newEngineWithText(t, "a", "b")
	c1, err := e.AddComment("on a", "alice", 0, nil, nil)
	require.NoError(t, err)
	_, err = e.AddComment("on b", "bob", 1, nil, nil)
	require.NoError(t, err)
	_, err = e.ResolveComment(c1.ID)
	require.NoError(t, err)

	byPara, err := e.ParagraphComments(1)
	require.NoError(t, err)
	require.Len(t, byPara, 1)
	assert.Equal(t, "on b", byPara[0].Text)

	_, err = e.ParagraphComments(5)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	assert.Len(t, e.CommentsByAuthor("alice"), 1)
	assert.Empty(t, e.CommentsByAuthor("nobody"))

	stats := e.CommentStats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Open)
	assert.Equal(t, 1, stats.Resolved)
}

func TestClearComments(t *testing.T) {
	e := newEngineWithText(t, "body")
	c, err := e.AddComment("one", "alice", 0, nil, nil)
	require.NoError(t, err)
	_, err = e.AddComment("two", "alice", 0, nil, nil)
	require.NoError(t, err)

	n := e.ClearComments()

	assert.Equal(t, 2, n)
	assert.Empty(t, e.Comments())

	// Ids keep advancing so cleared ids never come back.
	c2, err := e.AddComment("three", "alice", 0, nil, nil)
	require.NoError(t, err)
	assert.Greater(t, c2.ID, c.ID)
}
