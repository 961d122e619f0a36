package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisionCmd_Use(t *testing.T) {
	assert.Equal(t, "revision", revisionCmd.Use)
	assert.Contains(t, revisionCmd.Aliases, "rev")
}

func TestRevisionAddCmd_RecordsRevision(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "body")
	require.NoError(t, err)

	out, err := execute(t, "revision", "add", path, "replace", "0",
		"--author", "alice", "--original", "body", "--new", "better body")
	defer func() { revisionAuthor, revisionOriginal, revisionNew = "", "", "" }()

	assert.NoError(t, err)
	assert.Contains(t, out, "Recorded revision 0 (replace by alice)")
}

func TestRevisionAddCmd_InvalidAction(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "body")
	require.NoError(t, err)

	_, err = execute(t, "revision", "add", path, "rewrite", "0")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
}

func TestRevisionAcceptCmd_AppliesEdit(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "Goodbye")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "replace", "0", "--new", "Hello")
	defer func() { revisionNew = "" }()
	require.NoError(t, err)

	out, err := execute(t, "revision", "accept", path, "0", "--by", "bob")
	defer func() { revisionBy = "" }()
	assert.NoError(t, err)
	assert.Contains(t, out, "Accepted revision 0")

	out, err = execute(t, "view", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "[0] Hello")
}

func TestRevisionRejectCmd_LeavesBody(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "keep me")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "delete", "0")
	require.NoError(t, err)

	out, err := execute(t, "revision", "reject", path, "0")
	assert.NoError(t, err)
	assert.Contains(t, out, "Rejected revision 0")

	out, err = execute(t, "view", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "[0] keep me")
}

func TestRevisionAcceptCmd_AlreadyProcessed(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "body")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "format", "0")
	require.NoError(t, err)
	_, err = execute(t, "revision", "accept", path, "0")
	require.NoError(t, err)

	_, err = execute(t, "revision", "accept", path, "0")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already been processed")
}

func TestRevisionListCmd_FiltersPending(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "body")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "format", "0")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "format", "0")
	require.NoError(t, err)
	_, err = execute(t, "revision", "reject", path, "0")
	require.NoError(t, err)

	out, err := execute(t, "revision", "list", path, "--pending")
	defer func() { revisionListPending = false }()

	assert.NoError(t, err)
	assert.Contains(t, out, "Total: 1 revisions")
	assert.NotContains(t, out, "[0]")
}

func TestRevisionAcceptAllCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "body")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "format", "0")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "format", "0")
	require.NoError(t, err)

	out, err := execute(t, "revision", "accept-all", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Accepted 2 revisions")
}

func TestRevisionStatsCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "body")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "format", "0")
	require.NoError(t, err)
	_, err = execute(t, "revision", "reject", path, "0")
	require.NoError(t, err)

	out, err := execute(t, "revision", "stats", path)

	assert.NoError(t, err)
	assert.Contains(t, out, "Revisions: 1 total")
	assert.Contains(t, out, "Rejected: 1")
}

func TestRevisionClearCmd_ResetsHistory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "body")
	require.NoError(t, err)
	_, err = execute(t, "revision", "add", path, "format", "0")
	require.NoError(t, err)

	out, err := execute(t, "revision", "clear", path)
	assert.NoError(t, err)
	assert.Contains(t, out, "Removed 1 revisions")

	// Ids restart after a clear.
	out, err = execute(t, "revision", "add", path, "format", "0")
	assert.NoError(t, err)
	assert.Contains(t, out, "Recorded revision 0")
}

func TestCompareCmd_ReportsDifference(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)
	_, err := execute(t, "paragraph", "add", path, "same")
	require.NoError(t, err)
	_, err = execute(t, "paragraph", "add", path, "same")
	require.NoError(t, err)

	out, err := execute(t, "compare", path, "0", "1")

	assert.NoError(t, err)
	assert.Contains(t, out, "identical")
}

func TestTrackCmd_TogglesTracking(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)

	out, err := execute(t, "track", path, "on")
	assert.NoError(t, err)
	assert.Contains(t, out, "Change tracking enabled")

	out, err = execute(t, "track", path, "off")
	assert.NoError(t, err)
	assert.Contains(t, out, "Change tracking disabled")
}

func TestTrackCmd_RejectsBadMode(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := createTestDocument(t)

	_, err := execute(t, "track", path, "maybe")

	assert.Error(t, err)
}
