package version

import (
	"context"

	"github.com/Spiderpig86/gittr/internal/cli/command"
	"github.com/Spiderpig86/gittr/internal/i18n"
	"github.com/urfave/cli/v3"
)

type VersionCommandFactory struct {
	provider command.DispatcherProvider
}

func NewVersionCommandFactory(provider command.DispatcherProvider) *VersionCommandFactory {
	return &VersionCommandFactory{provider: provider}
}

func (f *VersionCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   t.GetMessage("commands.version.usage", 0, nil),
		Action: func(ctx context.Context, _ *cli.Command) error {
			d, err := f.provider(ctx)
			if err != nil {
				return err
			}
			return d.Version(ctx)
		},
	}
}
