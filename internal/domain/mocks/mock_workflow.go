// Package mocks holds testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gooze.dev/pkg/survivors/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a mock and asserts its expectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

// Generate provides a mock function.
func (_m *MockWorkflow) Generate(ctx context.Context, args domain.GenerateArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// List provides a mock function.
func (_m *MockWorkflow) List(ctx context.Context, args domain.ListArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}
