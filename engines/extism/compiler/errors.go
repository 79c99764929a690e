package compiler

import "errors"

var (
	ErrBytecodeNil        = errors.New("wasm bytecode is nil")
	ErrExecCreationFailed = errors.New("unable to create wasm executable")
	ErrExecutableClosed   = errors.New("executable is closed")
)

// Diagnostic messages reported for WASM sources.
const (
	MsgEmptySource     = "wasm content is empty"
	MsgInvalidBase64   = "wasm content is not valid base64"
	MsgCompileFailed   = "wasm module failed to compile"
	MsgInstanceFailed  = "wasm module failed to start"
	MsgEntryNotFound   = "entry point function '%s' not found"
	msgExportsListed   = "exported functions: %s"
	msgExportsNone     = "module exports no functions"
	msgExportsUnlisted = "unable to list exported functions"
)
