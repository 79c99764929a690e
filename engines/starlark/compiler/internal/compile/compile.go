package compile

import (
	"fmt"

	"github.com/robbyt/go-polycompile/engines/starlark/internal"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// compile parses and resolves the script. A syntax problem comes back as a
// syntax.Error and resolver problems as a resolve.ErrorList, both wrapped with
// ErrCompileFailed.
func compile(
	filename string,
	source string,
	opts *syntax.FileOptions,
	globals starlarkLib.StringDict,
) (*starlarkLib.Program, error) {
	if opts == nil {
		opts = &syntax.FileOptions{}
	}

	// Standard modules first, then the provided globals so they can override them.
	predeclared := internal.StarlarkModules()
	for k, v := range globals {
		predeclared[k] = v
	}

	f, err := opts.Parse(filename, source, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	prog, err := starlarkLib.FileProgram(f, predeclared.Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	return prog, nil
}

// CompileWithEmptyGlobals compiles the script with the named globals predeclared as None.
// Scripts that read values injected at run time (for example ctx) need those names
// declared at compile time, even though the values arrive later.
func CompileWithEmptyGlobals(
	filename string,
	source string,
	globals []string,
) (*starlarkLib.Program, error) {
	opts := &syntax.FileOptions{
		GlobalReassign: true,
	}

	stdModules := internal.StarlarkModules()
	predeclared := make(starlarkLib.StringDict, len(globals))
	for _, name := range globals {
		if stdModules.Has(name) {
			continue
		}
		predeclared[name] = starlarkLib.None
	}

	return compile(filename, source, opts, predeclared)
}
