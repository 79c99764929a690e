package compiler

import (
	risorCompiler "github.com/risor-io/risor/compiler"
	engineTypes "github.com/robbyt/go-polycompile/engines/types"
)

type executable struct {
	source   string
	byteCode *risorCompiler.Code
}

func newExecutable(source string, byteCode *risorCompiler.Code) *executable {
	if source == "" || byteCode == nil {
		return nil
	}
	return &executable{
		source:   source,
		byteCode: byteCode,
	}
}

func (e *executable) GetSource() string {
	return e.source
}

func (e *executable) GetByteCode() any {
	return e.byteCode
}

func (e *executable) GetRisorByteCode() *risorCompiler.Code {
	return e.byteCode
}

func (e *executable) GetEngineType() engineTypes.Type {
	return engineTypes.Risor
}
