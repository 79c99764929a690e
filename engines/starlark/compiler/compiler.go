package compiler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polycompile/engines/starlark/compiler/internal/compile"
	"github.com/robbyt/go-polycompile/platform/diagnostics"
	"github.com/robbyt/go-polycompile/platform/script"
	"go.starlark.net/resolve"
	"go.starlark.net/syntax"
)

// Compiler compiles Starlark source and reports syntax and resolver errors as diagnostics.
type Compiler struct {
	globals    []string
	filename   string
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Starlark Compiler with the provided options. Globals are predeclared
// while resolving names, so scripts can reference values injected at run time.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
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
	return "starlark.Compiler"
}

// Compile implements binding.Compiler.
func (c *Compiler) Compile(source string) (diagnostics.Result, error) {
	result, err := c.compile(source)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Compiler) compile(source string) (*script.Result, error) {
	logger := c.logger.WithGroup("compile")
	logger.Debug("Starting compilation", "filename", c.filename, "globals", c.globals)

	program, err := compile.CompileWithEmptyGlobals(c.filename, source, c.globals)
	if err != nil {
		diags, ok := diagnosticsFromError(err)
		if !ok {
			logger.Error("Compilation failed", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		logger.Warn("Compilation reported errors", "count", diags.Size())
		return script.NewResult(diags, nil), nil
	}

	if program == nil {
		logger.Error("Compilation returned nil program")
		return nil, ErrBytecodeNil
	}

	exe := newExecutable(source, program)
	if exe == nil {
		logger.Error("Failed to create executable from program")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Compilation completed")
	return script.NewResult(diagnostics.NewList(), exe), nil
}

// diagnosticsFromError converts syntax and resolver errors into diagnostics. It
// returns false for any other error, which is treated as a compiler failure.
func diagnosticsFromError(err error) (*diagnostics.List, bool) {
	var resolveErrs resolve.ErrorList
	if errors.As(err, &resolveErrs) {
		diags := diagnostics.NewList()
		for _, e := range resolveErrs {
			diags.Add(e.Error())
		}
		return diags, true
	}

	var syntaxErr syntax.Error
	if errors.As(err, &syntaxErr) {
		return diagnostics.NewList(syntaxErr.Error()), true
	}

	return nil, false
}
