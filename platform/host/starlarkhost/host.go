// Package starlarkhost exposes binding functions to Starlark scripts as predeclared builtins.
package starlarkhost

import (
	"fmt"
	"maps"
	"sync"

	"github.com/robbyt/go-polycompile/platform/binding"
	"go.starlark.net/starlark"
)

// Host collects builtins for a Starlark thread's predeclared environment.
type Host struct {
	mu      sync.RWMutex
	globals starlark.StringDict
}

// New returns an empty Host.
func New() *Host {
	return &Host{globals: starlark.StringDict{}}
}

func (h *Host) String() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return fmt.Sprintf("starlarkhost.Host{Globals: %d}", len(h.globals))
}

// Register implements binding.Host. A name registered twice keeps the later function.
func (h *Host) Register(name string, fn binding.Func) error {
	if name == "" {
		return binding.ErrEmptySymbol
	}
	if fn == nil {
		return binding.ErrNilFunc
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.globals[name] = Builtin(name, fn)
	return nil
}

// Predeclared returns a copy of the registered globals, suitable for starlark.ExecFileOptions.
func (h *Host) Predeclared() starlark.StringDict {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return maps.Clone(h.globals)
}

// Builtin wraps fn as a Starlark builtin taking an optional source string and returning
// a list of strings. A compile call failure fails the calling script.
func Builtin(name string, fn binding.Func) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(
		_ *starlark.Thread,
		b *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var source string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "source?", &source); err != nil {
			return nil, err
		}

		errs, err := fn(source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}

		elems := make([]starlark.Value, len(errs))
		for i, msg := range errs {
			elems[i] = starlark.String(msg)
		}
		return starlark.NewList(elems), nil
	})
}
