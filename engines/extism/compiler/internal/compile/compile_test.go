package compile

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/robbyt/go-polycompile/engines/extism/adapters"
	"github.com/robbyt/go-polycompile/engines/extism/wasmdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
)

func TestDecodeBase64(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString(wasmdata.TestModule)
		got, err := DecodeBase64("  " + encoded + "\n")
		require.NoError(t, err)
		assert.Equal(t, wasmdata.TestModule, got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := DecodeBase64("not base64!!")
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidBinary)
	})
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	assert.True(t, settings.EnableWASI)
	assert.NotNil(t, settings.RuntimeConfig)
	assert.Empty(t, settings.HostFunctions)

	cfg := settings.pluginConfig()
	assert.True(t, cfg.EnableWasi)
	assert.Equal(t, settings.RuntimeConfig, cfg.RuntimeConfig)
}

func TestCompileSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("default options", func(t *testing.T) {
		plugin, err := CompileBytes(ctx, wasmdata.TestModule, nil)
		require.NoError(t, err)
		require.NotNil(t, plugin)
		defer func() { require.NoError(t, plugin.Close(ctx)) }()

		instance, err := plugin.Instance(ctx, adapters.NewPluginInstanceConfig())
		require.NoError(t, err)
		defer func() { require.NoError(t, instance.Close(ctx)) }()

		assert.True(t, instance.FunctionExists(wasmdata.EntrypointMain))
		assert.True(t, instance.FunctionExists(wasmdata.EntrypointRun))
		assert.False(t, instance.FunctionExists("missing"))
	})

	t.Run("decoded base64 without wasi", func(t *testing.T) {
		settings := &Settings{RuntimeConfig: wazero.NewRuntimeConfig()}
		encoded := base64.StdEncoding.EncodeToString(wasmdata.TestModule)

		wasmBytes, err := DecodeBase64(encoded)
		require.NoError(t, err)

		plugin, err := CompileBytes(ctx, wasmBytes, settings)
		require.NoError(t, err)
		require.NotNil(t, plugin)
		require.NoError(t, plugin.Close(ctx))
	})
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		_, err := CompileBytes(ctx, nil, nil)
		require.ErrorIs(t, err, ErrContentNil)
	})


	t.Run("invalid wasm", func(t *testing.T) {
		_, err := CompileBytes(ctx, []byte("not a wasm module"), nil)
		require.ErrorIs(t, err, ErrCompileFailed)
	})
}

func TestExportedFunctions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("sorted names", func(t *testing.T) {
		names, err := ExportedFunctions(ctx, wasmdata.Module("zeta", "alpha", "mid"))
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
	})

	t.Run("no exports", func(t *testing.T) {
		names, err := ExportedFunctions(ctx, wasmdata.Module())
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ExportedFunctions(ctx, nil)
		require.ErrorIs(t, err, ErrContentNil)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ExportedFunctions(ctx, []byte{0x00, 0x61})
		require.ErrorIs(t, err, ErrCompileFailed)
	})
}
