// Package mocks provides testify mocks for the dispatch interfaces, laid
// out the way mockery's expecter template lays them out.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockResolver is a mock implementation of dispatch.Resolver.
type MockResolver struct {
	mock.Mock
}

// MockResolver_Expecter records typed expectations.
type MockResolver_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation builder.
func (_m *MockResolver) EXPECT() *MockResolver_Expecter {
	return &MockResolver_Expecter{mock: &_m.Mock}
}

// LookPath provides a mock function with given fields: name
func (_m *MockResolver) LookPath(name string) (string, error) {
	ret := _m.Called(name)

	if len(ret) == 0 {
		panic("no return value specified for LookPath")
	}

	if rf, ok := ret.Get(0).(func(string) (string, error)); ok {
		return rf(name)
	}
	return ret.String(0), ret.Error(1)
}

// MockResolver_LookPath_Call wraps mock.Call for LookPath.
type MockResolver_LookPath_Call struct {
	*mock.Call
}

// LookPath is a helper method to define mock.On call
//   - name string
func (_e *MockResolver_Expecter) LookPath(name interface{}) *MockResolver_LookPath_Call {
	return &MockResolver_LookPath_Call{Call: _e.mock.On("LookPath", name)}
}

// Return sets the values LookPath returns.
func (_c *MockResolver_LookPath_Call) Return(path string, err error) *MockResolver_LookPath_Call {
	_c.Call.Return(path, err)
	return _c
}

// RunAndReturn computes the return values with fn.
func (_c *MockResolver_LookPath_Call) RunAndReturn(fn func(string) (string, error)) *MockResolver_LookPath_Call {
	_c.Call.Return(fn)
	return _c
}

// NewMockResolver creates a new instance of MockResolver. It also registers
// a cleanup function to assert the mock's expectations.
func NewMockResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResolver {
	m := &MockResolver{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
