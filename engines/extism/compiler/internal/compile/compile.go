package compile

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	extismSDK "github.com/extism/go-sdk"
	"github.com/tetratelabs/wazero"

	"github.com/robbyt/go-polycompile/engines/extism/adapters"
)

// Settings configures the plugin built for a module.
type Settings struct {
	EnableWASI    bool
	RuntimeConfig wazero.RuntimeConfig
	HostFunctions []extismSDK.HostFunction
}

// DefaultSettings enables WASI on a fresh wazero runtime config.
func DefaultSettings() *Settings {
	return &Settings{
		EnableWASI:    true,
		RuntimeConfig: wazero.NewRuntimeConfig(),
	}
}

func (s *Settings) pluginConfig() extismSDK.PluginConfig {
	return extismSDK.PluginConfig{
		EnableWasi:    s.EnableWASI,
		RuntimeConfig: s.RuntimeConfig,
	}
}

// DecodeBase64 decodes base64-encoded WASM content. Surrounding whitespace is ignored.
func DecodeBase64(scriptContent string) ([]byte, error) {
	wasmBytes, err := base64.StdEncoding.DecodeString(strings.TrimSpace(scriptContent))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBinary, err)
	}
	return wasmBytes, nil
}

// CompileBytes builds a compiled Extism plugin from raw WASM bytes. Nil settings
// mean DefaultSettings.
func CompileBytes(
	ctx context.Context,
	wasmBytes []byte,
	settings *Settings,
) (adapters.CompiledPlugin, error) {
	if len(wasmBytes) == 0 {
		return nil, ErrContentNil
	}
	if settings == nil {
		settings = DefaultSettings()
	}

	manifest := extismSDK.Manifest{
		Wasm: []extismSDK.Wasm{
			extismSDK.WasmData{Data: wasmBytes},
		},
	}

	plugin, err := extismSDK.NewCompiledPlugin(ctx, manifest, settings.pluginConfig(), settings.HostFunctions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return adapters.NewCompiledPluginAdapter(plugin), nil
}
