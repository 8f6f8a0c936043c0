package main

import (
	"bytes"
	"testing"

	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/ui"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	color.NoColor = true

	t.Run("should build the root command", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("GITTR_LANG", "en")

		root, translations, err := initializeApp()

		require.NoError(t, err)
		require.NotNil(t, translations)
		names := make([]string, 0, len(root.Commands))
		for _, c := range root.Commands {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"commit", "reconfig", "list", "search", "update", "version", "completion"}, names)
	})

	t.Run("should report a missing home directory with its suggestion", func(t *testing.T) {
		t.Setenv("HOME", "")
		t.Setenv("GITTR_LANG", "en")

		root, translations, err := initializeApp()

		assert.Nil(t, root)
		require.NotNil(t, translations)
		assert.ErrorIs(t, err, apperrors.ErrHomeDir)

		var out bytes.Buffer
		ui.HandleAppError(&out, err, translations)
		assert.Contains(t, out.String(), "Failed to resolve the home directory")
		assert.Contains(t, out.String(), "Make sure $HOME is set")
	})
}
