package clipboard

import (
	"testing"

	"github.com/Spiderpig86/gittr/internal/prompt"
	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
)

var _ prompt.Clipboard = System{}

func TestSystem_WriteAll(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("a clipboard utility is installed; writing to it would clobber the user's clipboard")
	}

	err := System{}.WriteAll(":tada:")

	assert.ErrorIs(t, err, ErrUnsupported)
}
