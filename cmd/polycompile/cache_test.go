package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestResultCache(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		c, err := openResultCache("")
		require.NoError(t, err)
		assert.Nil(t, c)

		require.NoError(t, c.Put("k", &cachePayload{}))
		hit, err := c.Get("k", &cachePayload{})
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("round trip", func(t *testing.T) {
		c, err := openResultCache(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, c.Put("k", &cachePayload{Engine: "risor", Errors: []string{"a", "b"}}))

		var got cachePayload
		hit, err := c.Get("k", &got)
		require.NoError(t, err)
		require.True(t, hit)
		assert.Equal(t, "risor", got.Engine)
		assert.Equal(t, []string{"a", "b"}, got.Errors)
	})

	t.Run("empty errors stay non-nil", func(t *testing.T) {
		c, err := openResultCache(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, c.Put("k", &cachePayload{Errors: []string{}}))

		var got cachePayload
		hit, err := c.Get("k", &got)
		require.NoError(t, err)
		require.True(t, hit)
		assert.NotNil(t, got.Errors)
	})

	t.Run("miss and schema mismatch", func(t *testing.T) {
		dir := t.TempDir()
		c, err := openResultCache(dir)
		require.NoError(t, err)

		hit, err := c.Get("absent", &cachePayload{})
		require.NoError(t, err)
		assert.False(t, hit)

		old, err := msgpack.Marshal(&cachePayload{Schema: cacheSchemaVersion + 1})
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "results"), 0o755))
		require.NoError(t, os.WriteFile(c.pathFor("old"), old, 0o600))

		hit, err = c.Get("old", &cachePayload{})
		require.NoError(t, err)
		assert.False(t, hit)
	})
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	base := &checkConfig{}
	withGlobals := &checkConfig{globals: []string{"request"}}

	assert.Equal(t, cacheKey(base, "starlark", "x"), cacheKey(base, "starlark", "x"))
	assert.NotEqual(t, cacheKey(base, "starlark", "x"), cacheKey(base, "risor", "x"))
	assert.NotEqual(t, cacheKey(base, "starlark", "x"), cacheKey(withGlobals, "starlark", "x"))
	assert.NotEqual(t, cacheKey(base, "starlark", "x"), cacheKey(base, "starlark", "y"))
}
