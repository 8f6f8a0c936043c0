// Package emoji exposes the catalog commands: list, search and update.
package emoji

import (
	"context"

	"github.com/Spiderpig86/gittr/internal/cli/command"
	"github.com/Spiderpig86/gittr/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ListCommandFactory struct {
	provider command.DispatcherProvider
}

func NewListCommandFactory(provider command.DispatcherProvider) *ListCommandFactory {
	return &ListCommandFactory{provider: provider}
}

func (f *ListCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l", "ls"},
		Usage:   t.GetMessage("commands.list.usage", 0, nil),
		Action: dispatch(f.provider, func(ctx context.Context, d command.Dispatcher) error {
			return d.List(ctx)
		}),
	}
}

type SearchCommandFactory struct {
	provider command.DispatcherProvider
}

func NewSearchCommandFactory(provider command.DispatcherProvider) *SearchCommandFactory {
	return &SearchCommandFactory{provider: provider}
}

func (f *SearchCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   t.GetMessage("commands.search.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "copy",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("commands.search.copy_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := f.provider(ctx)
			if err != nil {
				return err
			}
			return d.Search(ctx, cmd.Bool("copy"))
		},
	}
}

type UpdateCommandFactory struct {
	provider command.DispatcherProvider
}

func NewUpdateCommandFactory(provider command.DispatcherProvider) *UpdateCommandFactory {
	return &UpdateCommandFactory{provider: provider}
}

func (f *UpdateCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "update",
		Aliases: []string{"u"},
		Usage:   t.GetMessage("commands.update.usage", 0, nil),
		Action: dispatch(f.provider, func(ctx context.Context, d command.Dispatcher) error {
			return d.Update(ctx)
		}),
	}
}

func dispatch(provider command.DispatcherProvider, run func(context.Context, command.Dispatcher) error) cli.ActionFunc {
	return func(ctx context.Context, _ *cli.Command) error {
		d, err := provider(ctx)
		if err != nil {
			return err
		}
		return run(ctx, d)
	}
}
