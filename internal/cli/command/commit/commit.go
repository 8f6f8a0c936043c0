package commit

import (
	"context"

	"github.com/Spiderpig86/gittr/internal/cli/command"
	"github.com/Spiderpig86/gittr/internal/cli/completion_helper"
	"github.com/Spiderpig86/gittr/internal/i18n"
	"github.com/urfave/cli/v3"
)

type CommitCommandFactory struct {
	provider command.DispatcherProvider
}

func NewCommitCommandFactory(provider command.DispatcherProvider) *CommitCommandFactory {
	return &CommitCommandFactory{provider: provider}
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "commit",
		Aliases:       []string{"c"},
		Usage:         t.GetMessage("commands.commit.usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, _ *cli.Command) error {
			d, err := f.provider(ctx)
			if err != nil {
				return err
			}
			return d.Commit(ctx)
		},
	}
}
