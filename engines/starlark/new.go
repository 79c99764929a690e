// Package starlark wires the Starlark compiler into the binding.
package starlark

import (
	"log/slog"

	"github.com/robbyt/go-polycompile/engines/starlark/compiler"
)

// NewCompiler creates a new Starlark compiler using the functional options pattern.
// Returns a compiler implementing the binding.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// FromHandler creates a Starlark compiler that logs through logHandler and
// predeclares the ctx global.
func FromHandler(logHandler slog.Handler, opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	all := append([]compiler.FunctionalOption{compiler.WithLogHandler(logHandler)}, opts...)
	return NewCompiler(append(all, compiler.WithCtxGlobal())...)
}
