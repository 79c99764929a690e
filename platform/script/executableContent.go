package script

import (
	engineTypes "github.com/robbyt/go-polycompile/engines/types"
)

// ExecutableContent is the compiled form of a script that produced no diagnostics.
// It carries the original source next to the engine specific bytecode.
type ExecutableContent interface {
	// GetSource returns the original script content as a string.
	GetSource() string

	// GetByteCode returns the compiled bytecode in the engine's own format. Callers
	// assert it into the type the engine uses (e.g. *starlark.Program).
	GetByteCode() any

	// GetEngineType returns the engine that compiled the content.
	GetEngineType() engineTypes.Type
}
