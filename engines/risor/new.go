// Package risor wires the Risor compiler into the binding.
package risor

import (
	"log/slog"

	"github.com/robbyt/go-polycompile/engines/risor/compiler"
)

// NewCompiler creates a new Risor compiler using the functional options pattern.
// Returns a compiler implementing the binding.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// FromHandler creates a Risor compiler that logs through logHandler and knows the
// ctx global.
func FromHandler(logHandler slog.Handler, opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	all := append([]compiler.FunctionalOption{compiler.WithLogHandler(logHandler)}, opts...)
	return NewCompiler(append(all, compiler.WithCtxGlobal())...)
}
