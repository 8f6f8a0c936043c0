package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/Spiderpig86/gittr/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPrompter_Prompt(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := setupFixture(t, config.Defaults())
	f.catalog.On("Catalog", ctx, false).Return(testCatalog, nil)

	// Act
	err := NewListPrompter(f.args).Prompt(ctx)

	// Assert
	require.NoError(t, err)
	out := f.out.String()
	assert.Contains(t, out, ":tada:")
	assert.Contains(t, out, "insect issue")
	assert.Contains(t, out, "Description")
	assert.Less(t, strings.Index(out, ":tada:"), strings.Index(out, ":bug:"), "catalog order is kept")
	assert.Contains(t, out, "2 emojis")
	f.ui.AssertNotCalled(t, "Select")
}
