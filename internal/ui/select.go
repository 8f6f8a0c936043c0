package ui

import (
	"strings"

	"github.com/Spiderpig86/gittr/internal/prompt"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxVisible bounds how many choices a select list shows at once.
const maxVisible = 10

type selectModel struct {
	question string
	source   prompt.SourceFunc
	filter   textinput.Model
	hint     string
	empty    string

	choices []prompt.Choice
	cursor  int
	offset  int

	chosen    *prompt.Choice
	cancelled bool
}

func newSelectModel(question string, source prompt.SourceFunc, placeholder, hint, empty string) selectModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Focus()

	return selectModel{
		question: question,
		source:   source,
		filter:   ti,
		hint:     hint,
		empty:    empty,
		choices:  source(""),
	}
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.choices) == 0 {
			return m, nil
		}
		choice := m.choices[m.cursor]
		m.chosen = &choice
		return m, tea.Quit
	case tea.KeyUp, tea.KeyCtrlP:
		m.move(-1)
		return m, nil
	case tea.KeyDown, tea.KeyCtrlN:
		m.move(1)
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.choices = m.source(m.filter.Value())
		m.cursor, m.offset = 0, 0
	}
	return m, cmd
}

// move shifts the cursor and scrolls the window so the cursor stays visible.
func (m *selectModel) move(delta int) {
	if len(m.choices) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.choices) {
		m.cursor = len(m.choices) - 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisible {
		m.offset = m.cursor - maxVisible + 1
	}
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question))
	b.WriteString(" ")

	if m.chosen != nil {
		b.WriteString(answerStyle.Render(m.chosen.Label))
		b.WriteString("\n")
		return b.String()
	}
	if m.cancelled {
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.filter.View())
	b.WriteString("\n")

	if len(m.choices) == 0 {
		b.WriteString(hintStyle.Render("  " + m.empty))
		b.WriteString("\n")
	}

	end := m.offset + maxVisible
	if end > len(m.choices) {
		end = len(m.choices)
	}
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render(cursorMark))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(m.choices[i].Label)
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render(m.hint))
	b.WriteString("\n")
	return b.String()
}
