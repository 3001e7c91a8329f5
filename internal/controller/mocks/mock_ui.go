// Package mocks holds testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gooze.dev/pkg/survivors/internal/controller"
	m "gooze.dev/pkg/survivors/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a mock and asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// DisplaySummary provides a mock function.
func (_m *MockUI) DisplaySummary(ctx context.Context, groups int, output m.Path) error {
	ret := _m.Called(ctx, groups, output)
	return ret.Error(0)
}

// DisplaySurvivors provides a mock function.
func (_m *MockUI) DisplaySurvivors(ctx context.Context, groups *m.PromptGroups, format controller.ListFormat) error {
	ret := _m.Called(ctx, groups, format)
	return ret.Error(0)
}
