package compile

import (
	"context"
	"fmt"
	"slices"

	"github.com/tetratelabs/wazero"
)

// ExportedFunctions compiles wasmBytes with a throwaway wazero runtime and returns the
// names of the functions the module exports, sorted.
func ExportedFunctions(ctx context.Context, wasmBytes []byte) ([]string, error) {
	if len(wasmBytes) == 0 {
		return nil, ErrContentNil
	}

	rt := wazero.NewRuntime(ctx)
	defer func() { _ = rt.Close(ctx) }()

	mod, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	defer func() { _ = mod.Close(ctx) }()

	names := make([]string, 0, len(mod.ExportedFunctions()))
	for name := range mod.ExportedFunctions() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
