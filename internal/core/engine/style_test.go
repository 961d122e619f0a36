package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redline-labs/redline-cli/internal/core/domain"
)

func TestCreateStyle(t *testing.T) {
	t.Run("creates a custom style", func(t *testing.T) {
		e := New()

		s, err := e.CreateStyle(StyleCreate{
			Name:     "Body Emphasis",
			Type:     domain.StyleTypeCharacter,
			Italic:   boolPtr(true),
			FontSize: intPtr(12),
		})
		require.NoError(t, err)

		assert.Equal(t, "Body Emphasis", s.Name)
		assert.False(t, s.BuiltIn)
		assert.Contains(t, e.CustomStyles(), "Body Emphasis")
	})

	t.Run("empty type defaults to paragraph", func(t *testing.T) {
		e := New()

		s, err := e.CreateStyle(StyleCreate{Name: "Plain"})
		require.NoError(t, err)
		assert.Equal(t, domain.StyleTypeParagraph, s.Type)
	})

	t.Run("duplicate name fails", func(t *testing.T) {
		e := New()

		_, err := e.CreateStyle(StyleCreate{Name: "Normal"})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("invalid type fails", func(t *testing.T) {
		e := New()

		_, err := e.CreateStyle(StyleCreate{Name: "X", Type: domain.StyleType("decorative")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing base style fails", func(t *testing.T) {
		e := New()

		_, err := e.CreateStyle(StyleCreate{Name: "X", BaseStyle: strPtr("Ghost")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("font size bounds are enforced", func(t *testing.T) {
		e := New()

		_, err := e.CreateStyle(StyleCreate{Name: "Tiny", FontSize: intPtr(domain.MinStyleFontSize - 1)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = e.CreateStyle(StyleCreate{Name: "Huge", FontSize: intPtr(domain.MaxStyleFontSize + 1)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = e.CreateStyle(StyleCreate{Name: "Edge", FontSize: intPtr(domain.MaxStyleFontSize)})
		assert.NoError(t, err)
	})

	t.Run("malformed color fails", func(t *testing.T) {
		e := New()

		_, err := e.CreateStyle(StyleCreate{Name: "X", Color: strPtr("#FF0000")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateStyle(t *testing.T) {
	t.Run("partial update keeps other attributes", func(t *testing.T) {
		e := New()
		_, err := e.CreateStyle(StyleCreate{Name: "Note", FontName: strPtr("Arial"), FontSize: intPtr(10)})
		require.NoError(t, err)

		s, err := e.UpdateStyle("Note", StyleUpdate{Bold: boolPtr(true)})
		require.NoError(t, err)

		require.NotNil(t, s.Bold)
		assert.True(t, *s.Bold)
		require.NotNil(t, s.FontName)
		assert.Equal(t, "Arial", *s.FontName)
	})

	t.Run("built-in styles can be updated", func(t *testing.T) {
		e := New()

		s, err := e.UpdateStyle("Normal", StyleUpdate{FontSize: intPtr(12)})
		require.NoError(t, err)
		require.NotNil(t, s.FontSize)
		assert.Equal(t, 12, *s.FontSize)
	})

	t.Run("unknown style fails", func(t *testing.T) {
		e := New()

		_, err := e.UpdateStyle("Ghost", StyleUpdate{Bold: boolPtr(true)})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteStyle(t *testing.T) {
	t.Run("removes a custom style", func(t *testing.T) {
		e := New()
		_, err := e.CreateStyle(StyleCreate{Name: "Temp"})
		require.NoError(t, err)

		require.NoError(t, e.DeleteStyle("Temp"))
		assert.NotContains(t, e.CustomStyles(), "Temp")
	})

	t.Run("built-in styles cannot be deleted", func(t *testing.T) {
		e := New()

		err := e.DeleteStyle("Normal")
		assert.ErrorIs(t, err, domain.ErrUnsupported)
		assert.Contains(t, e.BuiltInStyles(), "Normal")
	})

	t.Run("unknown style", func(t *testing.T) {
		e := New()

		assert.ErrorIs(t, e.DeleteStyle("Ghost"), domain.ErrNotFound)
	})
}

func TestCopyStyle(t *testing.T) {
	t.Run("copy inherits from the source", func(t *testing.T) {
		e := New()

		s, err := e.CopyStyle("Heading 1", "My Heading")
		require.NoError(t, err)

		assert.Equal(t, "My Heading", s.Name)
		assert.False(t, s.BuiltIn)
		require.NotNil(t, s.BaseStyle)
		assert.Equal(t, "Heading 1", *s.BaseStyle)
		require.NotNil(t, s.FontName)
		assert.Equal(t, "Calibri Light", *s.FontName)
	})

	t.Run("target name must be free", func(t *testing.T) {
		e := New()

		_, err := e.CopyStyle("Normal", "Title")
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("unknown source", func(t *testing.T) {
		e := New()

		_, err := e.CopyStyle("Ghost", "Copy")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplyStyleToParagraph(t *testing.T) {
	t.Run("sets the paragraph style reference", func(t *testing.T) {
		e := newEngineWithText(t, "heading text")

		require.NoError(t, e.ApplyStyleToParagraph(0, "Heading 2"))

		name, err := e.ParagraphStyle(0)
		require.NoError(t, err)
		require.NotNil(t, name)
		assert.Equal(t, "Heading 2", *name)
	})

	t.Run("unstyled paragraph reports nil", func(t *testing.T) {
		e := newEngineWithText(t, "plain")

		name, err := e.ParagraphStyle(0)
		require.NoError(t, err)
		assert.Nil(t, name)
	})

	t.Run("unknown style fails", func(t *testing.T) {
		e := newEngineWithText(t, "text")

		assert.ErrorIs(t, e.ApplyStyleToParagraph(0, "Ghost"), domain.ErrNotFound)
	})
}

func TestStyles_Filter(t *testing.T) {
	e := New()

	tableType := domain.StyleTypeTable
	tables := e.Styles(&tableType)
	require.Len(t, tables, 1)
	assert.Equal(t, "Table Grid", tables[0].Name)

	all := e.Styles(nil)
	assert.Greater(t, len(all), len(tables))
}
