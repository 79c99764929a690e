package compiler

import (
	engineTypes "github.com/robbyt/go-polycompile/engines/types"
	starlarkLib "go.starlark.net/starlark"
)

// executable holds a compiled Starlark program next to its source.
type executable struct {
	source  string
	program *starlarkLib.Program
}

// newExecutable returns nil when the program is missing.
func newExecutable(source string, program *starlarkLib.Program) *executable {
	if program == nil {
		return nil
	}
	return &executable{
		source:  source,
		program: program,
	}
}

func (e *executable) GetSource() string {
	return e.source
}

func (e *executable) GetByteCode() any {
	return e.program
}

// GetStarlarkByteCode returns the program without the type assertion GetByteCode needs.
func (e *executable) GetStarlarkByteCode() *starlarkLib.Program {
	return e.program
}

func (e *executable) GetEngineType() engineTypes.Type {
	return engineTypes.Starlark
}
