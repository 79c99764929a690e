// Package polycompile exposes the compile step of embeddable script engines to host
// environments. A host passes source text and receives the engine's error messages as
// an ordered []string; an empty slice means the engine reported nothing.
package polycompile

import (
	"encoding/base64"
	"fmt"

	"github.com/robbyt/go-polycompile/engines/extism"
	"github.com/robbyt/go-polycompile/engines/risor"
	risorCompiler "github.com/robbyt/go-polycompile/engines/risor/compiler"
	"github.com/robbyt/go-polycompile/engines/starlark"
	starlarkCompiler "github.com/robbyt/go-polycompile/engines/starlark/compiler"
	"github.com/robbyt/go-polycompile/engines/types"
	"github.com/robbyt/go-polycompile/options"
	"github.com/robbyt/go-polycompile/platform/binding"
	"github.com/robbyt/go-polycompile/platform/script/loader"
)

// DefaultEngine is the engine registered under binding.Symbol by RegisterAll.
const DefaultEngine = types.Starlark

// Compile is the binding: it runs c on source and returns the reported errors in order.
func Compile(c binding.Compiler, source string) ([]string, error) {
	return binding.Compile(c, source)
}

// NewCompiler builds the compiler for engineType.
func NewCompiler(engineType types.Type, opts ...options.Option) (binding.Compiler, error) {
	cfg, err := options.Apply(engineType, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	handler := cfg.GetHandler()

	switch cfg.GetEngineType() {
	case types.Starlark:
		c, err := starlark.FromHandler(handler, starlarkCompiler.WithGlobals(cfg.GetGlobals()))
		if err != nil {
			return nil, fmt.Errorf("failed to create %s compiler: %w", engineType, err)
		}
		return c, nil
	case types.Risor:
		c, err := risor.FromHandler(handler, risorCompiler.WithGlobals(cfg.GetGlobals()))
		if err != nil {
			return nil, fmt.Errorf("failed to create %s compiler: %w", engineType, err)
		}
		return c, nil
	case types.Extism:
		c, err := extism.FromHandler(handler, cfg.GetEntryPoint())
		if err != nil {
			return nil, fmt.Errorf("failed to create %s compiler: %w", engineType, err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownType, engineType)
	}
}

// CompileString builds a compiler for engineType and compiles source with it.
func CompileString(engineType types.Type, source string, opts ...options.Option) ([]string, error) {
	c, err := NewCompiler(engineType, opts...)
	if err != nil {
		return nil, err
	}
	return Compile(c, source)
}

// CompileLoader reads the source from l and compiles it. Raw WASM content is base64
// encoded for the Extism engine, and other binary content is rejected with
// loader.ErrNotWasm before the engine sees it.
func CompileLoader(engineType types.Type, l loader.Loader, opts ...options.Option) ([]string, error) {
	content, err := loader.ReadBytes(l)
	if err != nil {
		return nil, err
	}
	if engineType == types.Extism {
		if err := loader.CheckWasm(content); err != nil {
			return nil, err
		}
	}
	return CompileString(engineType, SourceFor(engineType, content), opts...)
}

// SourceFor converts file content into the source string the engine expects. Extism
// takes base64 text, so a raw WASM binary is encoded; everything else is passed as is.
func SourceFor(engineType types.Type, content []byte) string {
	if engineType == types.Extism && loader.IsWasm(content) {
		return base64.StdEncoding.EncodeToString(content)
	}
	return string(content)
}

// SymbolFor returns the global name for an engine-specific binding, such as
// "polycompile_compile_risor".
func SymbolFor(engineType types.Type) string {
	return binding.Symbol + "_" + engineType.String()
}

// RegisterAll registers DefaultEngine under binding.Symbol and every engine under
// SymbolFor(engine) on h.
func RegisterAll(h binding.Host, opts ...options.Option) error {
	for _, t := range types.All() {
		c, err := NewCompiler(t, opts...)
		if err != nil {
			return err
		}

		if err := binding.RegisterAs(h, SymbolFor(t), c); err != nil {
			return err
		}
		if t == DefaultEngine {
			if err := binding.Register(h, c); err != nil {
				return err
			}
		}
	}
	return nil
}
