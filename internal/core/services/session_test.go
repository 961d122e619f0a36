package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redline-labs/redline-cli/internal/adapters/driven/codec/docjson"
	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
)

func newSessionFixture(t *testing.T) (*SessionService, string) {
	t.Helper()
	codec := docjson.New()
	docs := NewDocumentService(codec)
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, docs.Create(context.Background(), path))
	return NewSessionService(codec), path
}

func TestSessionService_Open(t *testing.T) {
	t.Run("assigns a unique id", func(t *testing.T) {
		sessions, path := newSessionFixture(t)

		a, err := sessions.Open(context.Background(), path)
		require.NoError(t, err)
		b, err := sessions.Open(context.Background(), path)
		require.NoError(t, err)

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, path, a.Path)
		assert.False(t, a.OpenedAt.IsZero())
	})

	t.Run("missing document", func(t *testing.T) {
		sessions, _ := newSessionFixture(t)

		_, err := sessions.Open(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionService_GetAndList(t *testing.T) {
	sessions, path := newSessionFixture(t)

	info, err := sessions.Open(context.Background(), path)
	require.NoError(t, err)

	got, err := sessions.Get(info.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, got.ID)

	_, err = sessions.Get("unknown")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list := sessions.List()
	require.Len(t, list, 1)
	assert.Equal(t, info.ID, list[0].ID)
}

func TestSessionService_With(t *testing.T) {
	t.Run("edits accumulate in memory", func(t *testing.T) {
		sessions, path := newSessionFixture(t)
		info, err := sessions.Open(context.Background(), path)
		require.NoError(t, err)

		err = sessions.With(info.ID, func(eng *engine.Engine) error {
			_, err := eng.AddParagraph("draft", nil, nil)
			return err
		})
		require.NoError(t, err)

		err = sessions.With(info.ID, func(eng *engine.Engine) error {
			assert.Equal(t, 1, eng.ParagraphCount())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("unknown session", func(t *testing.T) {
		sessions, _ := newSessionFixture(t)

		err := sessions.With("unknown", func(*engine.Engine) error { return nil })
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionService_SaveAndClose(t *testing.T) {
	t.Run("save writes the file without closing", func(t *testing.T) {
		sessions, path := newSessionFixture(t)
		info, err := sessions.Open(context.Background(), path)
		require.NoError(t, err)

		err = sessions.With(info.ID, func(eng *engine.Engine) error {
			_, err := eng.AddParagraph("saved", nil, nil)
			return err
		})
		require.NoError(t, err)
		require.NoError(t, sessions.Save(context.Background(), info.ID))

		// A second session sees the saved state; the first stays open.
		other, err := sessions.Open(context.Background(), path)
		require.NoError(t, err)
		err = sessions.With(other.ID, func(eng *engine.Engine) error {
			assert.Equal(t, 1, eng.ParagraphCount())
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, sessions.List(), 2)
	})

	t.Run("close saves and removes the session", func(t *testing.T) {
		sessions, path := newSessionFixture(t)
		info, err := sessions.Open(context.Background(), path)
		require.NoError(t, err)

		err = sessions.With(info.ID, func(eng *engine.Engine) error {
			_, err := eng.AddParagraph("flushed on close", nil, nil)
			return err
		})
		require.NoError(t, err)
		require.NoError(t, sessions.Close(context.Background(), info.ID))

		_, err = sessions.Get(info.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, sessions.List())

		docs := NewDocumentService(docjson.New())
		err = docs.View(context.Background(), path, func(eng *engine.Engine) error {
			assert.Equal(t, 1, eng.ParagraphCount())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("close unknown session", func(t *testing.T) {
		sessions, _ := newSessionFixture(t)

		err := sessions.Close(context.Background(), "unknown")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
