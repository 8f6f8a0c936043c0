package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	domainErrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/i18n"
	"github.com/Spiderpig86/gittr/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

var _ prompt.UI = (*Terminal)(nil)

// Terminal runs each question as its own Bubble Tea program.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	trans *i18n.Translations
	opts  []tea.ProgramOption
}

func NewTerminal(in io.Reader, out io.Writer, t *i18n.Translations, opts ...tea.ProgramOption) *Terminal {
	return &Terminal{in: in, out: out, trans: t, opts: opts}
}

func (t *Terminal) Form(ctx context.Context, title string, fields []prompt.FormField) ([]int, error) {
	final, err := t.run(ctx, newFormModel(title, fields, t.msg("ui.form_hint")))
	if err != nil {
		return nil, err
	}
	m := final.(formModel)
	if m.cancelled || !m.submitted {
		return nil, domainErrors.ErrPromptCancelled
	}
	return m.Answers(), nil
}

func (t *Terminal) Select(ctx context.Context, question string, source prompt.SourceFunc) (prompt.Choice, error) {
	model := newSelectModel(question, source, t.msg("ui.filter_placeholder"), t.msg("ui.select_hint"), t.msg("ui.no_matches"))
	final, err := t.run(ctx, model)
	if err != nil {
		return prompt.Choice{}, err
	}
	m := final.(selectModel)
	if m.cancelled || m.chosen == nil {
		return prompt.Choice{}, domainErrors.ErrPromptCancelled
	}
	return *m.chosen, nil
}

func (t *Terminal) Input(ctx context.Context, question string, required bool) (string, error) {
	final, err := t.run(ctx, newInputModel(question, required, t.msg("ui.input_hint"), t.msg("ui.required")))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.cancelled || !m.submitted {
		return "", domainErrors.ErrPromptCancelled
	}
	return m.Value(), nil
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	}, t.opts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, mapRunError(err)
	}
	return final, nil
}

// mapRunError turns a program that was killed or interrupted into a
// cancellation; anything else is a prompt failure.
func mapRunError(err error) error {
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) ||
		errors.Is(err, context.Canceled) {
		return domainErrors.ErrPromptCancelled.WithError(err)
	}
	return domainErrors.ErrPromptFailed.WithError(fmt.Errorf("terminal: %w", err))
}

func (t *Terminal) msg(id string) string {
	return t.trans.GetMessage(id, 0, nil)
}
