//go:build js && wasm

// Package jshost installs binding functions on the JavaScript global object.
package jshost

import (
	"sync"
	"syscall/js"

	"github.com/robbyt/go-polycompile/platform/binding"
)

// Host registers functions on js.Global(). Re-registering a name releases the previous
// wrapper.
type Host struct {
	mu      sync.Mutex
	funcs   map[string]js.Func
	release func(js.Func)
}

// New returns a Host bound to the JavaScript global object.
func New() *Host {
	return &Host{
		funcs:   make(map[string]js.Func),
		release: js.Func.Release,
	}
}

// Register implements binding.Host.
func (h *Host) Register(name string, fn binding.Func) error {
	if name == "" {
		return binding.ErrEmptySymbol
	}
	if fn == nil {
		return binding.ErrNilFunc
	}

	wrapped := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return call(fn, args)
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	js.Global().Set(name, wrapped)
	if prev, ok := h.funcs[name]; ok {
		h.release(prev)
	}
	h.funcs[name] = wrapped
	return nil
}

// SetValue sets a plain global, such as a version string.
func (h *Host) SetValue(name string, value any) {
	js.Global().Set(name, value)
}

// call converts the first argument to a string (missing or undefined is the empty
// string) and returns a JS array of strings. A failed compile call returns an Error
// object instead of panicking, since a panic would stop the Go runtime.
func call(fn binding.Func, args []js.Value) any {
	var source string
	if len(args) > 0 && !args[0].IsUndefined() && !args[0].IsNull() {
		source = args[0].String()
	}

	errs, err := fn(source)
	if err != nil {
		return js.Global().Get("Error").New(err.Error())
	}

	out := make([]any, len(errs))
	for i, msg := range errs {
		out[i] = msg
	}
	return js.ValueOf(out)
}
