// Package mocks holds testify mocks for the adapter interfaces.
package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"
	m "gooze.dev/pkg/survivors/internal/model"
)

// MockReportFSAdapter is a mock implementation of adapter.ReportFSAdapter.
type MockReportFSAdapter struct {
	mock.Mock
}

// NewMockReportFSAdapter creates a mock and asserts its expectations on cleanup.
func NewMockReportFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportFSAdapter {
	mockAdapter := &MockReportFSAdapter{}
	mockAdapter.Mock.Test(t)

	t.Cleanup(func() { mockAdapter.AssertExpectations(t) })

	return mockAdapter
}

// FileInfo provides a mock function.
func (_m *MockReportFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	ret := _m.Called(ctx, path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}

// ReadDir provides a mock function.
func (_m *MockReportFSAdapter) ReadDir(ctx context.Context, path m.Path) ([]os.DirEntry, error) {
	ret := _m.Called(ctx, path)

	var entries []os.DirEntry
	if v := ret.Get(0); v != nil {
		entries = v.([]os.DirEntry)
	}

	return entries, ret.Error(1)
}

// ReadFile provides a mock function.
func (_m *MockReportFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	ret := _m.Called(ctx, path)

	var data []byte
	if v := ret.Get(0); v != nil {
		data = v.([]byte)
	}

	return data, ret.Error(1)
}

// MkdirAll provides a mock function.
func (_m *MockReportFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	ret := _m.Called(ctx, path)
	return ret.Error(0)
}

// WriteFile provides a mock function.
func (_m *MockReportFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	ret := _m.Called(ctx, path, content, perm)
	return ret.Error(0)
}

// JoinPath provides a mock function.
func (_m *MockReportFSAdapter) JoinPath(ctx context.Context, elem ...string) m.Path {
	args := []interface{}{ctx}
	for _, e := range elem {
		args = append(args, e)
	}

	ret := _m.Called(args...)

	if rf, ok := ret.Get(0).(func(context.Context, ...string) m.Path); ok {
		return rf(ctx, elem...)
	}

	return ret.Get(0).(m.Path)
}
