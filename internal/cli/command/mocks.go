package command

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDispatcher is a testify mock of Dispatcher for the subcommand tests.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDispatcher) Reconfig(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDispatcher) ShowConfig(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDispatcher) List(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDispatcher) Search(ctx context.Context, copyToClipboard bool) error {
	return m.Called(ctx, copyToClipboard).Error(0)
}

func (m *MockDispatcher) Update(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDispatcher) Version(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
