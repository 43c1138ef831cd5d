package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/nem/internal/dispatch"
)

// MockRunner is a mock implementation of dispatch.Runner.
type MockRunner struct {
	mock.Mock
}

// MockRunner_Expecter records typed expectations.
type MockRunner_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation builder.
func (_m *MockRunner) EXPECT() *MockRunner_Expecter {
	return &MockRunner_Expecter{mock: &_m.Mock}
}

// Run provides a mock function with given fields: ctx, path, args, stdio
func (_m *MockRunner) Run(ctx context.Context, path string, args []string, stdio dispatch.Stdio) (int, error) {
	ret := _m.Called(ctx, path, args, stdio)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, []string, dispatch.Stdio) (int, error)); ok {
		return rf(ctx, path, args, stdio)
	}
	return ret.Int(0), ret.Error(1)
}

// MockRunner_Run_Call wraps mock.Call for Run.
type MockRunner_Run_Call struct {
	*mock.Call
}

// Run is a helper method to define mock.On call
//   - ctx context.Context
//   - path string
//   - args []string
//   - stdio dispatch.Stdio
func (_e *MockRunner_Expecter) Run(ctx interface{}, path interface{}, args interface{}, stdio interface{}) *MockRunner_Run_Call {
	return &MockRunner_Run_Call{Call: _e.mock.On("Run", ctx, path, args, stdio)}
}

// Return sets the values Run returns.
func (_c *MockRunner_Run_Call) Return(status int, err error) *MockRunner_Run_Call {
	_c.Call.Return(status, err)
	return _c
}

// RunAndReturn computes the return values with fn.
func (_c *MockRunner_Run_Call) RunAndReturn(fn func(context.Context, string, []string, dispatch.Stdio) (int, error)) *MockRunner_Run_Call {
	_c.Call.Return(fn)
	return _c
}

// NewMockRunner creates a new instance of MockRunner. It also registers a
// cleanup function to assert the mock's expectations.
func NewMockRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRunner {
	m := &MockRunner{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
