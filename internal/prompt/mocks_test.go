package prompt

import (
	"context"

	"github.com/Spiderpig86/gittr/internal/config"
	"github.com/Spiderpig86/gittr/internal/emoji"
	"github.com/stretchr/testify/mock"
)

type (
	MockUI struct {
		mock.Mock
	}

	MockGitService struct {
		mock.Mock
	}

	MockCatalog struct {
		mock.Mock
	}

	// memStore is an in-memory PreferenceStore that can be told to fail.
	memStore struct {
		prefs    config.Preferences
		writeErr error
		writes   int
	}
)

func (m *MockUI) Form(ctx context.Context, title string, fields []FormField) ([]int, error) {
	args := m.Called(ctx, title, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockUI) Select(ctx context.Context, question string, source SourceFunc) (Choice, error) {
	args := m.Called(ctx, question, source)
	return args.Get(0).(Choice), args.Error(1)
}

func (m *MockUI) Input(ctx context.Context, question string, required bool) (string, error) {
	args := m.Called(ctx, question, required)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) StageAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGitService) HasChanges(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockGitService) HasStagedChanges(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockGitService) CreateCommit(ctx context.Context, message string, sign bool) error {
	args := m.Called(ctx, message, sign)
	return args.Error(0)
}

func (m *MockCatalog) Catalog(ctx context.Context, forceRefresh bool) ([]emoji.Emoji, error) {
	args := m.Called(ctx, forceRefresh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]emoji.Emoji), args.Error(1)
}

func (s *memStore) Preferences() config.Preferences {
	return s.prefs.Clone()
}

func (s *memStore) Update(fn func(p *config.Preferences)) error {
	next := s.prefs.Clone()
	fn(&next)
	if s.writeErr != nil {
		return s.writeErr
	}
	s.prefs = next
	s.writes++
	return nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}
