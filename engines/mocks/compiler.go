package mocks

import (
	"github.com/robbyt/go-polycompile/platform/diagnostics"
	"github.com/stretchr/testify/mock"
)

// Compiler is a mock implementation of binding.Compiler for testing purposes.
type Compiler struct {
	mock.Mock
}

// Compile is a mock implementation of the Compile method.
func (m *Compiler) Compile(source string) (diagnostics.Result, error) {
	args := m.Called(source)
	result, _ := args.Get(0).(diagnostics.Result)
	return result, args.Error(1)
}
