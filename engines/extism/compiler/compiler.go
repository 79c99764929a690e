package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/robbyt/go-polycompile/engines/extism/adapters"
	"github.com/robbyt/go-polycompile/engines/extism/compiler/internal/compile"
	"github.com/robbyt/go-polycompile/platform/diagnostics"
	"github.com/robbyt/go-polycompile/platform/script"
)

type (
	compileFunc func(ctx context.Context, wasmBytes []byte, opts *compile.Settings) (adapters.CompiledPlugin, error)
	exportsFunc func(ctx context.Context, wasmBytes []byte) ([]string, error)
)

// Compiler checks base64-encoded WASM modules with the Extism SDK
type Compiler struct {
	entryPointName string
	ctx            context.Context
	options        *compile.Settings
	logHandler     slog.Handler
	logger         *slog.Logger

	compileBytes compileFunc
	listExports  exportsFunc
}

// New creates a new Extism WASM Compiler instance with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{
		entryPointName: defaultEntryPoint,
		options:        &compile.Settings{},
		compileBytes:   compile.CompileBytes,
		listExports:    compile.ExportedFunctions,
	}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "extism.Compiler"
}

// GetEntryPointName is a getter for the func name entrypoint
func (c *Compiler) GetEntryPointName() string {
	return c.entryPointName
}

// Compile implements binding.Compiler. The compiled plugin is released before returning;
// use CompileExecutable to keep it.
func (c *Compiler) Compile(source string) (diagnostics.Result, error) {
	result, err := c.compile(source)
	if err != nil {
		return nil, err
	}
	if exe, ok := result.Executable().(*Executable); ok {
		if err := exe.Close(c.ctx); err != nil {
			c.logger.Warn("Failed to close compiled plugin", "error", err)
		}
	}
	return result, nil
}

// CompileExecutable is Compile without releasing the plugin. When the result has no
// diagnostics, its Executable is an *Executable that the caller must Close.
func (c *Compiler) CompileExecutable(source string) (*script.Result, error) {
	return c.compile(source)
}

func (c *Compiler) compile(source string) (*script.Result, error) {
	logger := c.logger.WithGroup("compile")

	if strings.TrimSpace(source) == "" {
		logger.Warn("Compile called with empty script")
		return failed(MsgEmptySource), nil
	}

	wasmBytes, err := compile.DecodeBase64(source)
	if err != nil {
		logger.Warn("WASM source is not base64", "error", err)
		return failed(fmt.Sprintf("%s: %v", MsgInvalidBase64, err)), nil
	}
	if len(wasmBytes) == 0 {
		logger.Warn("WASM source decoded to zero bytes")
		return failed(MsgEmptySource), nil
	}

	logger.Debug("Starting WASM compilation", "scriptLength", len(wasmBytes))

	plugin, err := c.compileBytes(c.ctx, wasmBytes, c.options)
	if err != nil {
		logger.Warn("WASM compilation failed", "error", err)
		return failed(fmt.Sprintf("%s: %v", MsgCompileFailed, err)), nil
	}
	if plugin == nil {
		logger.Error("Compilation returned nil plugin")
		return nil, ErrBytecodeNil
	}

	diags := c.checkEntryPoint(plugin, wasmBytes)
	if !diags.Empty() {
		if err := plugin.Close(c.ctx); err != nil {
			logger.Warn("Failed to close compiled plugin", "error", err)
		}
		return script.NewResult(diags, nil), nil
	}

	exe := NewExecutable(source, wasmBytes, plugin, c.entryPointName)
	if exe == nil {
		logger.Error("Failed to create Executable from WASM plugin")
		if err := plugin.Close(c.ctx); err != nil {
			logger.Warn("Failed to close compiled plugin", "error", err)
		}
		return nil, ErrExecCreationFailed
	}

	logger.Debug("WASM compilation completed successfully")
	return script.NewResult(diagnostics.NewList(), exe), nil
}

// checkEntryPoint starts a temporary instance and verifies the entry point is exported.
func (c *Compiler) checkEntryPoint(plugin adapters.CompiledPlugin, wasmBytes []byte) *diagnostics.List {
	logger := c.logger.WithGroup("checkEntryPoint")

	instance, err := plugin.Instance(c.ctx, adapters.NewPluginInstanceConfig())
	if err != nil {
		logger.Warn("Failed to create test instance", "error", err)
		return diagnostics.NewList(fmt.Sprintf("%s: %v", MsgInstanceFailed, err))
	}
	defer func() {
		if err := instance.Close(c.ctx); err != nil {
			logger.Warn("Failed to close Extism plugin instance in compiler", "error", err)
		}
	}()

	funcName := c.entryPointName
	if instance.FunctionExists(funcName) {
		return diagnostics.NewList()
	}

	logger.Warn("Entry point function not found", "function", funcName)
	msg := fmt.Sprintf(MsgEntryNotFound, funcName)

	exports, err := c.listExports(c.ctx, wasmBytes)
	switch {
	case err != nil:
		logger.Debug("Unable to list exports", "error", err)
		msg += "; " + msgExportsUnlisted
	case len(exports) == 0:
		msg += "; " + msgExportsNone
	default:
		msg += "; " + fmt.Sprintf(msgExportsListed, strings.Join(exports, ", "))
	}
	return diagnostics.NewList(msg)
}

func failed(msg string) *script.Result {
	return script.NewResult(diagnostics.NewList(msg), nil)
}
