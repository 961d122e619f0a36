package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOpsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBatchCmd_Use(t *testing.T) {
	assert.Equal(t, "batch [path] [ops-file]", batchCmd.Use)
}

func TestBatchCmd_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "batch", "doc.json")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestBatchCmd_AppliesOperationsInOrder(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	ops := writeOpsFile(t, `[
		{"op": "add_paragraph", "params": {"text": "first draft"}},
		{"op": "replace_text", "params": {"find": "draft", "replace": "version", "options": {"case_sensitive": true}}},
		{"op": "set_metadata", "params": {"update": {"title": "Notes"}}}
	]`)

	out, err := execute(t, "batch", path, ops)
	assert.NoError(t, err)
	assert.Contains(t, out, "[0] add_paragraph: ok")
	assert.Contains(t, out, "[2] set_metadata: ok")
	assert.Contains(t, out, "3 succeeded, 0 failed, saved "+path)

	out, err = execute(t, "view", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "first version")
}

func TestBatchCmd_ContinuesPastFailures(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	ops := writeOpsFile(t, `[
		{"op": "add_paragraph", "params": {"text": "kept"}},
		{"op": "delete_paragraph", "params": {"index": 9}},
		{"op": "add_paragraph", "params": {"text": "also kept"}}
	]`)

	out, err := execute(t, "batch", path, ops)
	assert.NoError(t, err)
	assert.Contains(t, out, "2 succeeded, 1 failed, saved "+path)
	assert.Contains(t, out, "index out of range")
}

func TestBatchCmd_StopOnErrorDiscards(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	ops := writeOpsFile(t, `[
		{"op": "add_paragraph", "params": {"text": "never saved"}},
		{"op": "delete_paragraph", "params": {"index": 9}}
	]`)

	out, err := execute(t, "batch", "--stop-on-error", path, ops)
	defer func() { batchStopOnError = false }()
	assert.NoError(t, err)
	assert.Contains(t, out, "changes discarded")

	out, err = execute(t, "view", path)
	assert.NoError(t, err)
	assert.NotContains(t, out, "never saved")
}

func TestBatchCmd_UnknownOperationFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	ops := writeOpsFile(t, `[{"op": "explode", "params": {}}]`)

	_, err := execute(t, "batch", path, ops)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestBatchCmd_MissingOpsFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)

	_, err := execute(t, "batch", path, filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read operations file")
}
