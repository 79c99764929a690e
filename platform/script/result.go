package script

import (
	"fmt"

	"github.com/robbyt/go-polycompile/platform/diagnostics"
)

// Result is what an engine compiler returns: the diagnostics it reported and, when
// there were none, the compiled content.
type Result struct {
	*diagnostics.List
	executable ExecutableContent
}

// NewResult pairs diagnostics with compiled content. The content is dropped when
// diags is non-empty, so a Result never carries both.
func NewResult(diags *diagnostics.List, exe ExecutableContent) *Result {
	if diags == nil {
		diags = diagnostics.NewList()
	}
	if !diags.Empty() {
		exe = nil
	}
	return &Result{List: diags, executable: exe}
}

func (r *Result) String() string {
	return fmt.Sprintf("script.Result{Diagnostics: %d, Executable: %t}", r.Size(), r.executable != nil)
}

// Executable returns the compiled content, or nil if compilation reported errors.
func (r *Result) Executable() ExecutableContent {
	return r.executable
}

// Success reports whether the compiler produced no diagnostics.
func (r *Result) Success() bool {
	return r.Empty()
}
