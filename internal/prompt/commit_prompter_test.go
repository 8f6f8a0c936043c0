package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/Spiderpig86/gittr/internal/config"
	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	typeQuestion    = "Select the type of change:"
	emojiQuestion   = "Choose an emoji:"
	subjectQuestion = "Commit subject:"
	bodyQuestion    = "Commit body (optional):"
)

func TestCommitPrompter_Prompt(t *testing.T) {
	t.Run("should compose a udacity style message and stage everything", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := setupFixture(t, prefsWith(true, config.EmojiFormatMarkdown, false, true))
		f.git.On("HasChanges", ctx).Return(true, nil)
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		var types SourceFunc
		f.ui.On("Select", ctx, typeQuestion, mock.Anything).
			Run(func(args mock.Arguments) { types = args.Get(2).(SourceFunc) }).
			Return(Choice{Value: "feat"}, nil)
		f.ui.On("Select", ctx, emojiQuestion, mock.Anything).Return(Choice{Value: ":tada:"}, nil)
		f.ui.On("Input", ctx, subjectQuestion, true).Return("add login.", nil)
		f.ui.On("Input", ctx, bodyQuestion, false).Return("", nil)
		f.git.On("StageAll", ctx).Return(nil)
		f.git.On("CreateCommit", ctx, "feat: :tada: Add login", false).Return(nil)

		// Act
		err := NewCommitPrompter(f.args).Prompt(ctx)

		// Assert
		require.NoError(t, err)
		f.git.AssertExpectations(t)
		f.git.AssertNotCalled(t, "HasStagedChanges", ctx)
		assert.Contains(t, f.out.String(), "feat: :tada: Add login")

		require.NotNil(t, types)
		assert.Len(t, types(""), 7)
		fixes := types("fix")
		require.NotEmpty(t, fixes)
		assert.Equal(t, "fix", fixes[0].Value)
	})

	t.Run("should skip the type question in plain style and sign when asked", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := setupFixture(t, prefsWith(false, config.EmojiFormatUnicode, true, false))
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		f.git.On("HasStagedChanges", ctx).Return(true, nil)
		f.ui.On("Select", ctx, emojiQuestion, mock.Anything).Return(Choice{Value: "🐛"}, nil)
		f.ui.On("Input", ctx, subjectQuestion, true).Return("fix crash on start", nil)
		f.ui.On("Input", ctx, bodyQuestion, false).Return("Closes #12", nil)
		f.git.On("CreateCommit", ctx, "🐛 fix crash on start\n\nCloses #12", true).Return(nil)

		// Act
		err := NewCommitPrompter(f.args).Prompt(ctx)

		// Assert
		require.NoError(t, err)
		f.git.AssertExpectations(t)
		f.git.AssertNotCalled(t, "StageAll", ctx)
		f.ui.AssertNotCalled(t, "Select", ctx, typeQuestion, mock.Anything)
	})

	t.Run("should stop before asking when nothing is staged", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, prefsWith(false, config.EmojiFormatMarkdown, false, true))
		f.git.On("HasStagedChanges", ctx).Return(false, nil)

		err := NewCommitPrompter(f.args).Prompt(ctx)

		assert.ErrorIs(t, err, apperrors.ErrNoChanges)
		assert.Empty(t, f.ui.Calls)
	})

	t.Run("should stop before asking when add-all has nothing to stage", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, prefsWith(true, config.EmojiFormatMarkdown, false, true))
		f.git.On("HasChanges", ctx).Return(false, nil)

		err := NewCommitPrompter(f.args).Prompt(ctx)

		assert.ErrorIs(t, err, apperrors.ErrNoChanges)
		assert.Empty(t, f.ui.Calls)
		f.git.AssertNotCalled(t, "StageAll", ctx)
		f.git.AssertNotCalled(t, "HasStagedChanges", ctx)
	})

	t.Run("should not stage or commit when the subject is cancelled", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, prefsWith(true, config.EmojiFormatMarkdown, false, false))
		f.git.On("HasChanges", ctx).Return(true, nil)
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		f.ui.On("Select", ctx, emojiQuestion, mock.Anything).Return(Choice{Value: ":bug:"}, nil)
		f.ui.On("Input", ctx, subjectQuestion, true).Return("", apperrors.ErrPromptCancelled)

		err := NewCommitPrompter(f.args).Prompt(ctx)

		assert.ErrorIs(t, err, apperrors.ErrPromptCancelled)
		f.git.AssertNotCalled(t, "StageAll", ctx)
		f.git.AssertNotCalled(t, "CreateCommit", ctx, mock.Anything, mock.Anything)
		assert.Empty(t, f.out.String())
	})

	t.Run("should surface a failed commit", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, prefsWith(true, config.EmojiFormatMarkdown, false, false))
		f.git.On("HasChanges", ctx).Return(true, nil)
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		f.ui.On("Select", ctx, emojiQuestion, mock.Anything).Return(Choice{Value: ":bug:"}, nil)
		f.ui.On("Input", ctx, subjectQuestion, true).Return("fix it", nil)
		f.ui.On("Input", ctx, bodyQuestion, false).Return("", nil)
		f.git.On("StageAll", ctx).Return(nil)
		commitErr := apperrors.ErrCreateCommit.WithError(errors.New("gpg failed to sign the data"))
		f.git.On("CreateCommit", ctx, ":bug: fix it", false).Return(commitErr)

		err := NewCommitPrompter(f.args).Prompt(ctx)

		assert.ErrorIs(t, err, apperrors.ErrCreateCommit)
		assert.Empty(t, f.out.String())
	})
}
