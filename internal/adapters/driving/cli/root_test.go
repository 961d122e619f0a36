package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redline-labs/redline-cli/internal/adapters/driven/codec/docjson"
	configfile "github.com/redline-labs/redline-cli/internal/adapters/driven/config/file"
	"github.com/redline-labs/redline-cli/internal/adapters/driven/config/memory"
	"github.com/redline-labs/redline-cli/internal/core/services"
)

// setupTestServices swaps in fresh services backed by an in-memory
// config store. The returned cleanup restores the previous wiring.
func setupTestServices() func() {
	oldDocument := documentService
	oldSession := sessionService
	oldConfig := configStore

	codec := docjson.New()
	documentService = services.NewDocumentService(codec)
	sessionService = services.NewSessionService(codec)
	configStore = memory.NewConfigStore()

	return func() {
		documentService = oldDocument
		sessionService = oldSession
		configStore = oldConfig
	}
}

// createTestDocument makes a fresh document file under the test's temp
// dir using the currently wired document service.
func createTestDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, documentService.Create(context.Background(), path))
	return path
}

// execute runs the root command with args and returns its combined
// output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "redline", rootCmd.Use)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
}

func TestDefaultAuthor(t *testing.T) {
	t.Run("falls back without a config store", func(t *testing.T) {
		oldConfig := configStore
		configStore = nil
		defer func() { configStore = oldConfig }()

		assert.Equal(t, "redline", defaultAuthor())
	})

	t.Run("reads the configured name", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()

		require.NoError(t, configStore.Set(configfile.KeyAuthorName, "alice"))

		assert.Equal(t, "alice", defaultAuthor())
	})
}

func TestResolveAuthor(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, configStore.Set(configfile.KeyAuthorName, "alice"))

	assert.Equal(t, "bob", resolveAuthor("bob"))
	assert.Equal(t, "alice", resolveAuthor(""))
}
