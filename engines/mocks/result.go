package mocks

import "github.com/stretchr/testify/mock"

// Result is a mock implementation of diagnostics.Result. It lets tests observe
// how a caller traverses an error collection.
type Result struct {
	mock.Mock
}

// Size is a mock implementation of the Size method.
func (m *Result) Size() int {
	args := m.Called()
	return args.Int(0)
}

// GetAtIndex is a mock implementation of the GetAtIndex method.
func (m *Result) GetAtIndex(i int) string {
	args := m.Called(i)
	return args.String(0)
}
