package compiler

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/robbyt/go-polycompile/engines/extism/adapters"
	engineTypes "github.com/robbyt/go-polycompile/engines/types"
)

// Executable holds a validated, compiled Extism plugin. The caller owns it and must Close it.
type Executable struct {
	source     string
	wasmBytes  []byte
	ByteCode   adapters.CompiledPlugin
	entryPoint string
	closed     atomic.Bool
	rwMutex    sync.RWMutex
}

// NewExecutable creates a new Executable instance
func NewExecutable(
	source string,
	wasmBytes []byte,
	byteCode adapters.CompiledPlugin,
	entryPoint string,
) *Executable {
	if len(wasmBytes) == 0 || byteCode == nil || entryPoint == "" {
		return nil
	}
	return &Executable{
		source:     source,
		wasmBytes:  wasmBytes,
		ByteCode:   byteCode,
		entryPoint: entryPoint,
	}
}

// GetSource returns the base64 source the module was compiled from
func (e *Executable) GetSource() string {
	return e.source
}

// GetWasmBytes returns the decoded module
func (e *Executable) GetWasmBytes() []byte {
	return e.wasmBytes
}

// GetByteCode returns the compiled plugin as a generic interface
func (e *Executable) GetByteCode() any {
	e.rwMutex.RLock()
	defer e.rwMutex.RUnlock()
	return e.ByteCode
}

// GetExtismByteCode returns the compiled plugin with its proper type
func (e *Executable) GetExtismByteCode() adapters.CompiledPlugin {
	e.rwMutex.RLock()
	defer e.rwMutex.RUnlock()
	return e.ByteCode
}

func (e *Executable) GetEngineType() engineTypes.Type {
	return engineTypes.Extism
}

// GetEntryPoint returns the name of the entry point function
func (e *Executable) GetEntryPoint() string {
	return e.entryPoint
}

// IsClosed reports whether Close has been called
func (e *Executable) IsClosed() bool {
	return e.closed.Load()
}

// Close releases the compiled plugin. Calling it more than once is a no-op.
func (e *Executable) Close(ctx context.Context) error {
	e.rwMutex.Lock()
	defer e.rwMutex.Unlock()

	if e.closed.CompareAndSwap(false, true) {
		return e.ByteCode.Close(ctx)
	}
	return nil
}
