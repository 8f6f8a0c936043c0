package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	question string
	required bool
	input    textinput.Model
	hint     string
	errText  string

	showErr   bool
	submitted bool
	cancelled bool
}

func newInputModel(question string, required bool, hint, errText string) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Focus()

	return inputModel{
		question: question,
		required: required,
		input:    ti,
		hint:     hint,
		errText:  errText,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.required && m.Value() == "" {
				m.showErr = true
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.Value() != "" {
		m.showErr = false
	}
	return m, cmd
}

func (m inputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question))
	b.WriteString(" ")

	if m.submitted {
		b.WriteString(answerStyle.Render(m.Value()))
		b.WriteString("\n")
		return b.String()
	}
	if m.cancelled {
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.showErr {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render(m.hint))
	b.WriteString("\n")
	return b.String()
}
