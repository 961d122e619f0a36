package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redline-labs/redline-cli/internal/core/engine"
)

func TestListCmd_Use(t *testing.T) {
	assert.Equal(t, "list", listCmd.Use)
}

func TestListCreateCmd(t *testing.T) {
	t.Run("creates a bullet list", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		path := createTestDocument(t)

		out, err := execute(t, "list", "create", path, "first", "second", "third")
		assert.NoError(t, err)
		assert.Contains(t, out, "Created bullet list of 3 items at paragraph 0")

		out, err = execute(t, "list", "show", path, "0")
		assert.NoError(t, err)
		assert.Contains(t, out, "List at paragraph 0 (bullet):")
		assert.Contains(t, out, "[1] second")
	})

	t.Run("creates a numbered list", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()
		defer func() { listCreateType = "bullet" }()

		path := createTestDocument(t)

		out, err := execute(t, "list", "create", path, "--type", "numbered", "one", "two")
		assert.NoError(t, err)
		assert.Contains(t, out, "Created numbered list of 2 items at paragraph 0")

		out, err = execute(t, "list", "show", path, "0")
		assert.NoError(t, err)
		assert.Contains(t, out, "(numbered)")
	})

	t.Run("invalid type fails", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()
		defer func() { listCreateType = "bullet" }()

		path := createTestDocument(t)

		_, err := execute(t, "list", "create", path, "--type", "dashed", "item")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid list type")
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := execute(t, "list", "create", "doc.json")

		assert.Error(t, err)
	})
}

func TestListAddCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() {
		listAddType = "bullet"
		listAddLevel = 0
	}()

	path := createTestDocument(t)
	_, err := execute(t, "list", "create", path, "--type", "numbered", "top")
	require.NoError(t, err)
	listCreateType = "bullet"

	out, err := execute(t, "list", "add", path, "nested", "--type", "numbered", "--level", "1")
	assert.NoError(t, err)
	assert.Contains(t, out, "Added list item at paragraph 1")

	out, err = execute(t, "list", "show", path, "0", "--json")
	defer func() { listShowJSON = false }()
	assert.NoError(t, err)
	assert.Contains(t, out, `"level": 1`)
	assert.Contains(t, out, "nested")
}

func TestListAddCmd_LevelOutOfRange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { listAddLevel = 0 }()

	path := createTestDocument(t)

	_, err := execute(t, "list", "add", path, "deep", "--level", "9")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
}

func TestListConvertCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { listConvertType = "bullet" }()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "plain text")
	require.NoError(t, err)

	out, err := execute(t, "list", "convert", path, "0", "--type", "numbered")
	assert.NoError(t, err)
	assert.Contains(t, out, "Converted paragraph 0 to a numbered list item")

	out, err = execute(t, "list", "show", path, "0")
	assert.NoError(t, err)
	assert.Contains(t, out, "plain text")
}

func TestListSetTypeCmd_KeepsLevel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() {
		listAddType = "bullet"
		listAddLevel = 0
	}()

	path := createTestDocument(t)
	_, err := execute(t, "list", "add", path, "child", "--level", "1")
	require.NoError(t, err)

	out, err := execute(t, "list", "set-type", path, "0", "numbered")
	assert.NoError(t, err)
	assert.Contains(t, out, "Set list type of paragraph 0 to numbered")

	err = documentService.View(context.Background(), path, func(eng *engine.Engine) error {
		style, err := eng.ParagraphStyle(0)
		require.NoError(t, err)
		require.NotNil(t, style)
		assert.Equal(t, "List Number 2", *style)
		return nil
	})
	assert.NoError(t, err)
}

func TestListRemoveCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "list", "create", path, "item")
	require.NoError(t, err)

	out, err := execute(t, "list", "remove", path, "0")
	assert.NoError(t, err)
	assert.Contains(t, out, "Removed list formatting from paragraph 0")

	out, err = execute(t, "list", "show", path, "0")
	assert.NoError(t, err)
	assert.Contains(t, out, "No list items.")
}

func TestListIndentOutdentCmds(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "list", "create", path, "item")
	require.NoError(t, err)

	out, err := execute(t, "list", "indent", path, "0")
	assert.NoError(t, err)
	assert.Contains(t, out, "Indented list item at paragraph 0")

	err = documentService.View(context.Background(), path, func(eng *engine.Engine) error {
		style, err := eng.ParagraphStyle(0)
		require.NoError(t, err)
		require.NotNil(t, style)
		assert.Equal(t, "List Bullet 2", *style)
		return nil
	})
	assert.NoError(t, err)

	out, err = execute(t, "list", "outdent", path, "0")
	assert.NoError(t, err)
	assert.Contains(t, out, "Outdented list item at paragraph 0")

	err = documentService.View(context.Background(), path, func(eng *engine.Engine) error {
		style, err := eng.ParagraphStyle(0)
		require.NoError(t, err)
		require.NotNil(t, style)
		assert.Equal(t, "List Bullet", *style)
		return nil
	})
	assert.NoError(t, err)
}

func TestListShowCmd_MissingParagraph(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)

	_, err := execute(t, "list", "show", path, "3")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestListCmds_RequireDocumentService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	old := documentService
	documentService = nil
	defer func() { documentService = old }()

	_, err := execute(t, "list", "create", "doc.json", "item")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "document service not configured")
}
