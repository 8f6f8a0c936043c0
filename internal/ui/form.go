package ui

import (
	"strings"

	"github.com/Spiderpig86/gittr/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel shows every field at once. The focused field's answer cycles
// with left and right; nothing is returned until the form is submitted.
type formModel struct {
	title  string
	fields []prompt.FormField
	hint   string

	selected []int
	focus    int

	submitted bool
	cancelled bool
}

func newFormModel(title string, fields []prompt.FormField, hint string) formModel {
	selected := make([]int, len(fields))
	for i, f := range fields {
		if f.Selected >= 0 && f.Selected < len(f.Choices) {
			selected[i] = f.Selected
		}
	}
	return formModel{
		title:    title,
		fields:   fields,
		hint:     hint,
		selected: selected,
	}
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.submitted = true
		return m, tea.Quit
	case "up", "shift+tab", "k":
		if m.focus > 0 {
			m.focus--
		}
	case "down", "tab", "j":
		if m.focus < len(m.fields)-1 {
			m.focus++
		}
	case "left", "h":
		m.cycle(-1)
	case "right", "l", " ":
		m.cycle(1)
	}
	return m, nil
}

func (m *formModel) cycle(delta int) {
	if len(m.fields) == 0 {
		return
	}
	n := len(m.fields[m.focus].Choices)
	if n == 0 {
		return
	}
	m.selected[m.focus] = (m.selected[m.focus] + delta + n) % n
}

// Answers returns a copy of the chosen index per field.
func (m formModel) Answers() []int {
	out := make([]int, len(m.selected))
	copy(out, m.selected)
	return out
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		marker := "  "
		if i == m.focus && !m.submitted {
			marker = cursorStyle.Render(cursorMark)
		}
		b.WriteString(marker)
		b.WriteString(f.Question)
		b.WriteString("\n    ")

		for j, c := range f.Choices {
			if j > 0 {
				b.WriteString(hintStyle.Render(" / "))
			}
			if j == m.selected[i] {
				b.WriteString(answerStyle.Render("[" + c.Label + "]"))
			} else {
				b.WriteString(hintStyle.Render(" " + c.Label + " "))
			}
		}
		b.WriteString("\n")
	}

	if !m.submitted && !m.cancelled {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n")
	}
	return b.String()
}
