package compile

import (
	"context"
	"errors"
	"fmt"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"
)

// ScriptError reports a problem in the script itself, found while parsing or
// compiling. Errors that are not a ScriptError come from the toolchain.
type ScriptError struct {
	Stage string
	Err   error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("risor %s error: %s", e.Stage, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Messages returns one user facing message per underlying error. Friendly messages
// are preferred when the error provides one.
func (e *ScriptError) Messages() []string {
	errs := []error{e.Err}
	if multi, ok := e.Err.(interface{ Unwrap() []error }); ok {
		errs = multi.Unwrap()
	}

	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		var friendlyErr risorErrors.FriendlyError
		if errors.As(err, &friendlyErr) {
			msgs = append(msgs, friendlyErr.FriendlyErrorMessage())
			continue
		}
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// Compile parses and compiles the script content into bytecode
func Compile(scriptContent *string, options ...risorCompiler.Option) (*risorCompiler.Code, error) {
	if scriptContent == nil {
		return nil, ErrContentNil
	}

	ast, err := risorParser.Parse(context.Background(), *scriptContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, &ScriptError{Stage: "parse", Err: err})
	}

	bc, err := risorCompiler.Compile(ast, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, &ScriptError{Stage: "compile", Err: err})
	}

	return bc, nil
}

// CompileWithGlobals parses and compiles the script content into bytecode, with custom global names
// which are needed when parsing a script that will eventually have globals injected at eval time.
func CompileWithGlobals(scriptContent *string, globals []string) (*risorCompiler.Code, error) {
	cfg := risorLib.NewConfig()
	globalNames := append(cfg.GlobalNames(), globals...)

	return Compile(scriptContent, risorCompiler.WithGlobalNames(globalNames))
}
