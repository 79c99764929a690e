package compiler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/robbyt/go-polycompile/engines/risor/compiler/internal/compile"
	"github.com/robbyt/go-polycompile/platform/diagnostics"
	"github.com/robbyt/go-polycompile/platform/script"
)

// Compiler compiles Risor source and reports parse and compile errors as diagnostics.
type Compiler struct {
	globals    []string
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Risor Compiler with the provided options.
// Global names are made known to the compiler so scripts may reference them.
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
	return "risor.Compiler"
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

	if isCommentOnly(source) {
		logger.Warn("Script contains no code")
		return script.NewResult(diagnostics.NewList(MsgNoInstructions), nil), nil
	}

	logger.Debug("Starting compilation", "globals", c.globals)

	bc, err := compile.CompileWithGlobals(&source, c.globals)
	if err != nil {
		var scriptErr *compile.ScriptError
		if !errors.As(err, &scriptErr) {
			logger.Error("Compilation failed", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
		diags := diagnostics.NewList(scriptErr.Messages()...)
		logger.Warn("Compilation reported errors", "stage", scriptErr.Stage, "count", diags.Size())
		return script.NewResult(diags, nil), nil
	}

	if bc == nil {
		logger.Error("Compilation returned nil bytecode")
		return nil, ErrBytecodeNil
	}

	instructionCount := bc.InstructionCount()
	logger.Debug("Compilation successful", "instructionCount", instructionCount)
	if instructionCount < 1 {
		logger.Warn("Bytecode has zero instructions")
		return script.NewResult(diagnostics.NewList(MsgNoInstructions), nil), nil
	}

	exe := newExecutable(source, bc)
	if exe == nil {
		logger.Error("Failed to create executable from bytecode")
		return nil, ErrExecCreationFailed
	}

	return script.NewResult(diagnostics.NewList(), exe), nil
}

// isCommentOnly reports whether source is empty, blank, or holds only comments.
func isCommentOnly(source string) bool {
	for line := range strings.SplitSeq(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			continue
		}
		return false
	}
	return true
}
