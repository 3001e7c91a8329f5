package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	m "gooze.dev/pkg/survivors/internal/model"
)

// MockReportStore is a mock implementation of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a mock and asserts its expectations on cleanup.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mockStore := &MockReportStore{}
	mockStore.Mock.Test(t)

	t.Cleanup(func() { mockStore.AssertExpectations(t) })

	return mockStore
}

// LoadReport provides a mock function.
func (_m *MockReportStore) LoadReport(ctx context.Context, path m.Path) (*m.Report, error) {
	ret := _m.Called(ctx, path)

	var report *m.Report
	if v := ret.Get(0); v != nil {
		report = v.(*m.Report)
	}

	return report, ret.Error(1)
}
