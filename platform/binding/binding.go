// Package binding exposes a compiler's compile entry point to a host environment.
// A host hands in source text and receives the compiler's error messages as an
// ordered []string. An empty slice means the compiler reported no errors.
package binding

import "github.com/robbyt/go-polycompile/platform/diagnostics"

// Symbol is the global name the binding is registered under.
const Symbol = "polycompile_compile"

// Compiler is the external compile operation consumed by the binding.
// A returned error means the compile call itself failed; it is not a diagnostic.
type Compiler interface {
	Compile(source string) (diagnostics.Result, error)
}

// Func is the host-callable form of the binding.
type Func func(source string) ([]string, error)

// Compile invokes c once and copies its error collection into a new slice, in index order.
// Errors from c are returned unchanged and panics are not recovered.
func Compile(c Compiler, source string) ([]string, error) {
	result, err := c.Compile(source)
	if err != nil {
		return nil, err
	}

	n := result.Size()
	errs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		errs = append(errs, result.GetAtIndex(i))
	}
	return errs, nil
}

// Bind returns a Func that compiles with c.
func Bind(c Compiler) Func {
	return func(source string) ([]string, error) {
		return Compile(c, source)
	}
}
