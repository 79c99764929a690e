// Package extism wires the Extism WASM compiler into the binding.
package extism

import (
	"log/slog"

	"github.com/robbyt/go-polycompile/engines/extism/compiler"
)

// NewCompiler creates a new Extism compiler using the functional options pattern.
// Returns a compiler implementing the binding.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// FromHandler creates an Extism compiler that logs through logHandler and requires
// modules to export entryPoint. An empty entryPoint keeps the default.
func FromHandler(
	logHandler slog.Handler,
	entryPoint string,
	opts ...compiler.FunctionalOption,
) (*compiler.Compiler, error) {
	all := []compiler.FunctionalOption{compiler.WithLogHandler(logHandler)}
	if entryPoint != "" {
		all = append(all, compiler.WithEntryPoint(entryPoint))
	}
	return NewCompiler(append(all, opts...)...)
}
