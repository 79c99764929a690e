package compiler

import "errors"

// MsgNoInstructions is the diagnostic reported for scripts with nothing to run.
const MsgNoInstructions = "script contains no instructions"

var (
	ErrBytecodeNil        = errors.New("risor bytecode is nil")
	ErrExecCreationFailed = errors.New("unable to create risor executable")
	ErrValidationFailed   = errors.New("risor script validation error")
)
