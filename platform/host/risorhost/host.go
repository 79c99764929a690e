// Package risorhost exposes binding functions to Risor scripts as global builtins.
package risorhost

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	risorLib "github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
	"github.com/robbyt/go-polycompile/platform/binding"
)

// Host collects Risor builtins to be installed as globals.
type Host struct {
	mu       sync.RWMutex
	builtins map[string]*object.Builtin
}

// New returns an empty Host.
func New() *Host {
	return &Host{builtins: make(map[string]*object.Builtin)}
}

func (h *Host) String() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return fmt.Sprintf("risorhost.Host{Globals: %d}", len(h.builtins))
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
	h.builtins[name] = Builtin(name, fn)
	return nil
}

// Names returns the registered global names, sorted.
func (h *Host) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Sorted(maps.Keys(h.builtins))
}

// Options returns one risor.WithGlobal option per registered builtin, for risor.Eval.
func (h *Host) Options() []risorLib.Option {
	h.mu.RLock()
	defer h.mu.RUnlock()

	opts := make([]risorLib.Option, 0, len(h.builtins))
	for _, name := range slices.Sorted(maps.Keys(h.builtins)) {
		opts = append(opts, risorLib.WithGlobal(name, h.builtins[name]))
	}
	return opts
}

// Builtin wraps fn as a Risor builtin taking an optional source string and returning a
// list of strings. A compile call failure is raised as a Risor error.
func Builtin(name string, fn binding.Func) *object.Builtin {
	return object.NewBuiltin(name, func(_ context.Context, args ...object.Object) object.Object {
		if len(args) > 1 {
			return object.NewArgsError(name, 1, len(args))
		}

		var source string
		if len(args) == 1 {
			str, ok := args[0].(*object.String)
			if !ok {
				return object.Errorf("type error: %s() expected a string argument (got %s)", name, args[0].Type())
			}
			source = str.Value()
		}

		errs, err := fn(source)
		if err != nil {
			return object.NewError(fmt.Errorf("%s: %w", name, err))
		}

		items := make([]object.Object, len(errs))
		for i, msg := range errs {
			items[i] = object.NewString(msg)
		}
		return object.NewList(items)
	})
}
