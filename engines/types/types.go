// Package types names the compile engines available to the binding.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies a compile engine.
type Type string

const (
	// Risor engine: https://github.com/risor-io/risor
	Risor Type = "risor"
	// Starlark engine: https://github.com/google/starlark-go
	Starlark Type = "starlark"
	// Extism WASM engine: https://github.com/extism/go-sdk
	Extism Type = "extism"
)

var ErrUnknownType = errors.New("unknown engine type")

// All returns every engine type in a stable order.
func All() []Type {
	return []Type{Starlark, Risor, Extism}
}

func (t Type) String() string {
	return string(t)
}

// Parse converts a case-insensitive engine name into a Type.
func Parse(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	switch t {
	case Risor, Starlark, Extism:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// FromExtension guesses the engine from a file extension such as ".star".
func FromExtension(ext string) (Type, bool) {
	switch strings.ToLower(ext) {
	case ".star", ".bzl", ".starlark":
		return Starlark, true
	case ".risor", ".rsr":
		return Risor, true
	case ".wasm":
		return Extism, true
	default:
		return "", false
	}
}
