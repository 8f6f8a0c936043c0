package ui

import (
	"strings"
	"testing"

	"github.com/Spiderpig86/gittr/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func letters(n int) prompt.SourceFunc {
	all := make([]prompt.Choice, n)
	for i := range all {
		c := string(rune('a' + i))
		all[i] = prompt.Choice{Label: "item " + c, Value: c}
	}
	return func(input string) []prompt.Choice {
		var out []prompt.Choice
		for _, c := range all {
			if strings.Contains(c.Label, input) {
				out = append(out, c)
			}
		}
		return out
	}
}

func TestSelectModel(t *testing.T) {
	t.Run("should pick the choice under the cursor", func(t *testing.T) {
		m := newSelectModel("Pick:", letters(3), "", "hint", "none")

		final, cmd := send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))

		sm := final.(selectModel)
		require.NotNil(t, sm.chosen)
		assert.Equal(t, "c", sm.chosen.Value, "cursor stops at the last item")
		assert.True(t, isQuit(t, cmd))
		assert.Contains(t, sm.View(), "item c")
	})

	t.Run("should refilter through the source on every keystroke", func(t *testing.T) {
		m := newSelectModel("Pick:", letters(5), "", "hint", "none")

		final, _ := send(m, key(tea.KeyDown), runes("d"))

		sm := final.(selectModel)
		require.Len(t, sm.choices, 1)
		assert.Equal(t, "d", sm.choices[0].Value)
		assert.Equal(t, 0, sm.cursor)
	})

	t.Run("should ignore enter when nothing matches", func(t *testing.T) {
		m := newSelectModel("Pick:", letters(3), "", "hint", "No matches")

		final, cmd := send(m, runes("zz"), key(tea.KeyEnter))

		sm := final.(selectModel)
		assert.Nil(t, sm.chosen)
		assert.False(t, isQuit(t, cmd))
		assert.Contains(t, sm.View(), "No matches")
	})

	t.Run("should scroll to keep the cursor visible", func(t *testing.T) {
		m := newSelectModel("Pick:", letters(15), "", "hint", "none")
		msgs := make([]tea.Msg, 12)
		for i := range msgs {
			msgs[i] = key(tea.KeyDown)
		}

		final, _ := send(m, msgs...)

		sm := final.(selectModel)
		assert.Equal(t, 12, sm.cursor)
		assert.Equal(t, 3, sm.offset)
		view := sm.View()
		assert.NotContains(t, view, "item a")
		assert.Contains(t, view, "item m")
	})

	t.Run("should cancel on escape and ctrl+c", func(t *testing.T) {
		for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
			m := newSelectModel("Pick:", letters(3), "", "hint", "none")

			final, cmd := send(m, key(k))

			sm := final.(selectModel)
			assert.True(t, sm.cancelled)
			assert.Nil(t, sm.chosen)
			assert.True(t, isQuit(t, cmd))
		}
	})
}

func yesNoField(key string, selected int) prompt.FormField {
	return prompt.FormField{
		Key:      key,
		Question: key + "?",
		Choices:  []prompt.Choice{{Label: "Yes", Value: "true"}, {Label: "No", Value: "false"}},
		Selected: selected,
	}
}

func TestFormModel(t *testing.T) {
	fields := []prompt.FormField{yesNoField("a", 0), yesNoField("b", 1), yesNoField("c", 0)}

	t.Run("should submit the preselected answers untouched", func(t *testing.T) {
		final, cmd := send(newFormModel("Title", fields, "hint"), key(tea.KeyEnter))

		fm := final.(formModel)
		assert.True(t, fm.submitted)
		assert.Equal(t, []int{0, 1, 0}, fm.Answers())
		assert.True(t, isQuit(t, cmd))
	})

	t.Run("should cycle the focused answer only", func(t *testing.T) {
		final, _ := send(newFormModel("Title", fields, "hint"),
			key(tea.KeyDown), key(tea.KeyRight), key(tea.KeyTab), key(tea.KeyLeft), key(tea.KeyEnter))

		fm := final.(formModel)
		assert.Equal(t, []int{0, 0, 1}, fm.Answers())
	})

	t.Run("should keep focus inside the form", func(t *testing.T) {
		final, _ := send(newFormModel("Title", fields, "hint"),
			key(tea.KeyUp), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))

		assert.Equal(t, 2, final.(formModel).focus)
	})

	t.Run("should return nothing when cancelled", func(t *testing.T) {
		final, cmd := send(newFormModel("Title", fields, "hint"), key(tea.KeyRight), key(tea.KeyEsc))

		fm := final.(formModel)
		assert.True(t, fm.cancelled)
		assert.False(t, fm.submitted)
		assert.True(t, isQuit(t, cmd))
	})

	t.Run("should show every question", func(t *testing.T) {
		view := newFormModel("Title", fields, "hint").View()

		for _, f := range fields {
			assert.Contains(t, view, f.Question)
		}
	})
}

func TestInputModel(t *testing.T) {
	t.Run("should insist on a value when required", func(t *testing.T) {
		final, cmd := send(newInputModel("Subject:", true, "hint", "This field is required"), key(tea.KeyEnter))

		im := final.(inputModel)
		assert.False(t, im.submitted)
		assert.False(t, isQuit(t, cmd))
		assert.Contains(t, im.View(), "This field is required")

		final, cmd = send(im, runes("add login"), key(tea.KeyEnter))

		im = final.(inputModel)
		assert.True(t, im.submitted)
		assert.Equal(t, "add login", im.Value())
		assert.True(t, isQuit(t, cmd))
	})

	t.Run("should accept an empty optional value", func(t *testing.T) {
		final, _ := send(newInputModel("Body:", false, "hint", "required"), key(tea.KeyEnter))

		im := final.(inputModel)
		assert.True(t, im.submitted)
		assert.Empty(t, im.Value())
	})

	t.Run("should cancel on escape", func(t *testing.T) {
		final, _ := send(newInputModel("Body:", false, "hint", "required"), runes("x"), key(tea.KeyEsc))

		assert.True(t, final.(inputModel).cancelled)
	})
}
