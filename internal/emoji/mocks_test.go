package emoji

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type (
	MockSource struct {
		mock.Mock
	}

	MockCache struct {
		mock.Mock
	}
)

func (m *MockSource) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSource) Fetch(ctx context.Context) ([]Emoji, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Emoji), args.Error(1)
}

func (m *MockCache) Get(key string, v any) (time.Time, bool, error) {
	args := m.Called(key, v)
	if fill, ok := args.Get(3).(func(any)); ok && fill != nil {
		fill(v)
	}
	return args.Get(0).(time.Time), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(key string, v any) error {
	args := m.Called(key, v)
	return args.Error(0)
}
