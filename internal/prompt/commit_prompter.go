package prompt

import (
	"context"
	"fmt"

	"github.com/Spiderpig86/gittr/internal/domain/models"
	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/logger"
	"github.com/fatih/color"
)

// CommitPrompter collects the pieces of a commit message and hands the
// composed message to git.
type CommitPrompter struct {
	args Args
}

func NewCommitPrompter(args Args) *CommitPrompter {
	return &CommitPrompter{args: args}
}

func (p *CommitPrompter) Prompt(ctx context.Context) error {
	prefs := p.args.Store.Preferences()

	// Say there is nothing to commit before asking anything.
	check := p.args.Git.HasStagedChanges
	if prefs.AddAll() {
		check = p.args.Git.HasChanges
	}
	pending, err := check(ctx)
	if err != nil {
		return err
	}
	if !pending {
		return apperrors.ErrNoChanges
	}

	answers, err := p.Ask(ctx)
	if err != nil {
		return err
	}
	return p.Apply(ctx, answers)
}

func (p *CommitPrompter) Ask(ctx context.Context) (models.CommitMessage, error) {
	t := p.args.T
	prefs := p.args.Store.Preferences()
	var msg models.CommitMessage

	if prefs.UdacityStyle() {
		choice, err := p.args.UI.Select(ctx, t.GetMessage("commit.type_question", 0, nil), commitTypeSource())
		if err != nil {
			return models.CommitMessage{}, err
		}
		msg.Type = choice.Value
	}

	catalog, err := p.args.Catalog.Catalog(ctx, false)
	if err != nil {
		return models.CommitMessage{}, err
	}
	choice, err := p.args.UI.Select(ctx, t.GetMessage("commit.emoji_question", 0, nil), emojiSource(catalog, prefs.Format()))
	if err != nil {
		return models.CommitMessage{}, err
	}
	msg.Emoji = choice.Value

	msg.Subject, err = p.args.UI.Input(ctx, t.GetMessage("commit.subject_question", 0, nil), true)
	if err != nil {
		return models.CommitMessage{}, err
	}

	msg.Body, err = p.args.UI.Input(ctx, t.GetMessage("commit.body_question", 0, nil), false)
	if err != nil {
		return models.CommitMessage{}, err
	}

	return msg, nil
}

func (p *CommitPrompter) Apply(ctx context.Context, msg models.CommitMessage) error {
	prefs := p.args.Store.Preferences()
	message := msg.Format(prefs.UdacityStyle())

	if prefs.AddAll() {
		if err := p.args.Git.StageAll(ctx); err != nil {
			return err
		}
	}

	logger.Debug(ctx, "creating commit", "sign", prefs.Sign(), "udacity", prefs.UdacityStyle())
	if err := p.args.Git.CreateCommit(ctx, message, prefs.Sign()); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(p.args.Out, p.args.T.GetMessage("commit.success", 0, map[string]interface{}{
		"Message": message,
	}))
	return nil
}

var typeName = color.New(color.FgCyan, color.Bold)

func commitTypeSource() SourceFunc {
	types := models.UdacityCommitTypes()
	return func(input string) []Choice {
		choices := make([]Choice, 0, len(types))
		for _, ct := range types {
			if input != "" && !containsFold(ct.Name+ct.Description, input) {
				continue
			}
			choices = append(choices, Choice{
				Label: fmt.Sprintf("%s - %s", typeName.Sprintf("%-8s", ct.Name), ct.Description),
				Value: ct.Name,
			})
		}
		return choices
	}
}
