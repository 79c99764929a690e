package binding

import "errors"

var (
	ErrEmptySymbol    = errors.New("symbol name is empty")
	ErrNilFunc        = errors.New("binding func is nil")
	ErrSymbolNotFound = errors.New("symbol not registered")
)
