package compile

import "errors"

var ErrCompileFailed = errors.New("failed to compile starlark script")
