package prompt

import (
	"context"
	"fmt"

	"github.com/Spiderpig86/gittr/internal/config"
	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/logger"
)

// ConfigAnswers is the buffered result of the configuration form.
type ConfigAnswers struct {
	AddAllFiles        bool
	EmojiFormat        config.EmojiFormat
	SignCommit         bool
	UdacityStyleCommit bool
}

var formats = []config.EmojiFormat{config.EmojiFormatMarkdown, config.EmojiFormatUnicode}

type ConfigPrompter struct {
	args Args
}

func NewConfigPrompter(args Args) *ConfigPrompter {
	return &ConfigPrompter{args: args}
}

func (p *ConfigPrompter) Prompt(ctx context.Context) error {
	answers, err := p.Ask(ctx)
	if err != nil {
		return err
	}
	return p.Apply(ctx, answers)
}

// Ask shows the four preferences as one form, preselected with the current
// values. Nothing is written here.
func (p *ConfigPrompter) Ask(ctx context.Context) (ConfigAnswers, error) {
	t := p.args.T
	prefs := p.args.Store.Preferences()
	yes, no := t.GetMessage("prompt.yes", 0, nil), t.GetMessage("prompt.no", 0, nil)

	addAllChoices, addAllSel := yesNo(yes, no, prefs.AddAll())
	signChoices, signSel := yesNo(yes, no, prefs.Sign())
	udacityChoices, udacitySel := yesNo(yes, no, prefs.UdacityStyle())

	formatSel := 0
	if prefs.Format() == config.EmojiFormatUnicode {
		formatSel = 1
	}

	fields := []FormField{
		{
			Key:      config.KeyAddAllFiles,
			Question: t.GetMessage("reconfig.add_all_question", 0, nil),
			Choices:  addAllChoices,
			Selected: addAllSel,
		},
		{
			Key:      config.KeyEmojiFormat,
			Question: t.GetMessage("reconfig.emoji_format_question", 0, nil),
			Choices: []Choice{
				{Label: t.GetMessage("reconfig.emoji_format_github", 0, nil), Value: string(config.EmojiFormatMarkdown)},
				{Label: t.GetMessage("reconfig.emoji_format_unicode", 0, nil), Value: string(config.EmojiFormatUnicode)},
			},
			Selected: formatSel,
		},
		{
			Key:      config.KeySignCommit,
			Question: t.GetMessage("reconfig.sign_commit_question", 0, nil),
			Choices:  signChoices,
			Selected: signSel,
		},
		{
			Key:      config.KeyUdacityStyleCommit,
			Question: t.GetMessage("reconfig.udacity_question", 0, nil),
			Choices:  udacityChoices,
			Selected: udacitySel,
		},
	}

	selected, err := p.args.UI.Form(ctx, t.GetMessage("reconfig.title", 0, nil), fields)
	if err != nil {
		return ConfigAnswers{}, err
	}
	if len(selected) != len(fields) {
		return ConfigAnswers{}, apperrors.ErrPromptFailed.WithError(
			fmt.Errorf("expected %d answers, got %d", len(fields), len(selected)))
	}
	for i, idx := range selected {
		if idx < 0 || idx >= len(fields[i].Choices) {
			return ConfigAnswers{}, apperrors.ErrPromptFailed.WithError(
				fmt.Errorf("answer %d out of range for %s", idx, fields[i].Key))
		}
	}

	return ConfigAnswers{
		AddAllFiles:        selected[0] == 0,
		EmojiFormat:        formats[selected[1]],
		SignCommit:         selected[2] == 0,
		UdacityStyleCommit: selected[3] == 0,
	}, nil
}

// Apply writes every answer in one persisted update.
func (p *ConfigPrompter) Apply(ctx context.Context, a ConfigAnswers) error {
	err := p.args.Store.Update(func(prefs *config.Preferences) {
		prefs.SetAddAllFiles(a.AddAllFiles)
		prefs.SetEmojiFormat(a.EmojiFormat)
		prefs.SetSignCommit(a.SignCommit)
		prefs.SetUdacityStyleCommit(a.UdacityStyleCommit)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "preferences saved",
		config.KeyAddAllFiles, a.AddAllFiles,
		config.KeyEmojiFormat, a.EmojiFormat,
		config.KeySignCommit, a.SignCommit,
		config.KeyUdacityStyleCommit, a.UdacityStyleCommit)

	_, _ = fmt.Fprintln(p.args.Out, p.args.T.GetMessage("reconfig.saved", 0, nil))
	return nil
}
