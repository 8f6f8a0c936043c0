package config

import (
	"context"

	"github.com/Spiderpig86/gittr/internal/cli/command"
	"github.com/Spiderpig86/gittr/internal/cli/completion_helper"
	"github.com/Spiderpig86/gittr/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ReconfigCommandFactory struct {
	provider command.DispatcherProvider
}

func NewReconfigCommandFactory(provider command.DispatcherProvider) *ReconfigCommandFactory {
	return &ReconfigCommandFactory{provider: provider}
}

func (f *ReconfigCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "reconfig",
		Aliases:       []string{"config"},
		Usage:         t.GetMessage("commands.reconfig.usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show",
				Usage: t.GetMessage("commands.reconfig.show_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := f.provider(ctx)
			if err != nil {
				return err
			}
			if cmd.Bool("show") {
				return d.ShowConfig(ctx)
			}
			return d.Reconfig(ctx)
		},
	}
}
