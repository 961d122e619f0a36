package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_Set_Success(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("author.name", "reviewer")
	require.NoError(t, err)

	val, ok := store.Get("author.name")
	assert.True(t, ok)
	assert.Equal(t, "reviewer", val)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("author.name", "original")
	require.NoError(t, err)

	err = store.Set("author.name", "updated")
	require.NoError(t, err)

	val, ok := store.Get("author.name")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("author.name", "reviewer"))
	require.NoError(t, store.Set("mcp.port", 8080))

	assert.Equal(t, "reviewer", store.GetString("author.name"))
	assert.Equal(t, "", store.GetString("mcp.port"), "non-string value")
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("int_key", 42))
	require.NoError(t, store.Set("int64_key", int64(43)))
	require.NoError(t, store.Set("float_key", 44.0))
	require.NoError(t, store.Set("string_key", "45"))

	assert.Equal(t, 42, store.GetInt("int_key"))
	assert.Equal(t, 43, store.GetInt("int64_key"))
	assert.Equal(t, 44, store.GetInt("float_key"))
	assert.Equal(t, 0, store.GetInt("string_key"), "strings are not coerced")
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("flag", true))
	require.NoError(t, store.Set("not_bool", "true"))

	assert.True(t, store.GetBool("flag"))
	assert.False(t, store.GetBool("not_bool"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_SaveLoad_NoOps(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("author.name", "reviewer"))

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, "reviewer", store.GetString("author.name"))
}

func TestConfigStore_Path(t *testing.T) {
	store := NewConfigStore()
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("author.name", "reviewer") //nolint:errcheck
		}()
		go func() {
			defer wg.Done()
			_ = store.GetString("author.name")
		}()
	}
	wg.Wait()

	assert.Equal(t, "reviewer", store.GetString("author.name"))
}
