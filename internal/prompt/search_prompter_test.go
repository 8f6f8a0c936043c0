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

func TestSearchPrompter_Prompt(t *testing.T) {
	t.Run("should filter live and print the markdown code", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := setupFixture(t, prefsWith(true, config.EmojiFormatMarkdown, false, true))
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		var source SourceFunc
		f.ui.On("Select", ctx, "Search for an emoji:", mock.Anything).
			Run(func(args mock.Arguments) { source = args.Get(2).(SourceFunc) }).
			Return(Choice{Label: "🎉 :tada: - party", Value: ":tada:"}, nil)

		// Act
		err := NewSearchPrompter(f.args, false).Prompt(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Emoji: :tada:\n", f.out.String())

		require.NotNil(t, source)
		assert.Equal(t, []Choice{{Label: "🎉 :tada: - party", Value: ":tada:"}}, source("tad"))
		all := source("")
		require.Len(t, all, 2)
		assert.Equal(t, ":tada:", all[0].Value)
		assert.Equal(t, ":bug:", all[1].Value)
		assert.Empty(t, source("rocket"))
		f.catalog.AssertNotCalled(t, "Catalog", ctx, true)
	})

	t.Run("should use the glyph in unicode format", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, prefsWith(true, config.EmojiFormatUnicode, false, true))
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		var source SourceFunc
		f.ui.On("Select", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { source = args.Get(2).(SourceFunc) }).
			Return(Choice{Value: "🐛"}, nil)

		err := NewSearchPrompter(f.args, false).Prompt(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Emoji: 🐛\n", f.out.String())
		assert.Equal(t, "🐛", source("insect")[0].Value)
	})

	t.Run("should print nothing when cancelled", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, config.Defaults())
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		f.ui.On("Select", ctx, mock.Anything, mock.Anything).Return(Choice{}, apperrors.ErrPromptCancelled)

		err := NewSearchPrompter(f.args, false).Prompt(ctx)

		assert.ErrorIs(t, err, apperrors.ErrPromptCancelled)
		assert.Empty(t, f.out.String())
		assert.Equal(t, 0, f.store.writes)
	})

	t.Run("should fail when the catalog is unavailable", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, config.Defaults())
		f.catalog.On("Catalog", ctx, false).Return(nil, errors.New("boom"))

		err := NewSearchPrompter(f.args, false).Prompt(ctx)

		assert.EqualError(t, err, "boom")
		f.ui.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSearchPrompter_Copy(t *testing.T) {
	t.Run("should copy the chosen emoji", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		f := setupFixture(t, prefsWith(true, config.EmojiFormatMarkdown, false, true))
		clip := &fakeClipboard{}
		f.args.Clipboard = clip
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		f.ui.On("Select", ctx, mock.Anything, mock.Anything).Return(Choice{Value: ":bug:"}, nil)

		// Act
		err := NewSearchPrompter(f.args, true).Prompt(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, ":bug:", clip.text)
		assert.Equal(t, "Emoji: :bug:\nCopied to the clipboard\n", f.out.String())
	})

	t.Run("should still succeed when the clipboard fails", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, config.Defaults())
		f.args.Clipboard = &fakeClipboard{err: errors.New("exec: \"xclip\": not found")}
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		f.ui.On("Select", ctx, mock.Anything, mock.Anything).Return(Choice{Value: ":bug:"}, nil)

		err := NewSearchPrompter(f.args, true).Prompt(ctx)

		require.NoError(t, err)
		assert.Contains(t, f.out.String(), "Could not copy to the clipboard")
	})

	t.Run("should not copy unless asked", func(t *testing.T) {
		ctx := context.Background()
		f := setupFixture(t, config.Defaults())
		clip := &fakeClipboard{}
		f.args.Clipboard = clip
		f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)
		f.ui.On("Select", ctx, mock.Anything, mock.Anything).Return(Choice{Value: ":bug:"}, nil)

		require.NoError(t, NewSearchPrompter(f.args, false).Prompt(ctx))

		assert.Empty(t, clip.text)
	})
}
