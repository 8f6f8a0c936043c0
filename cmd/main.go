package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/Spiderpig86/gittr/internal/app"
	"github.com/Spiderpig86/gittr/internal/cli/command"
	"github.com/Spiderpig86/gittr/internal/cli/command/commit"
	"github.com/Spiderpig86/gittr/internal/cli/command/completion"
	"github.com/Spiderpig86/gittr/internal/cli/command/config"
	"github.com/Spiderpig86/gittr/internal/cli/command/emoji"
	"github.com/Spiderpig86/gittr/internal/cli/command/version"
	"github.com/Spiderpig86/gittr/internal/cli/registry"
	cfg "github.com/Spiderpig86/gittr/internal/config"
	catalog "github.com/Spiderpig86/gittr/internal/emoji"
	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/i18n"
	"github.com/Spiderpig86/gittr/internal/infrastructure/cache"
	"github.com/Spiderpig86/gittr/internal/infrastructure/clipboard"
	"github.com/Spiderpig86/gittr/internal/infrastructure/git"
	"github.com/Spiderpig86/gittr/internal/infrastructure/httpclient"
	"github.com/Spiderpig86/gittr/internal/logger"
	"github.com/Spiderpig86/gittr/internal/ui"
	appversion "github.com/Spiderpig86/gittr/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		stop()
		os.Exit(1)
	}

	if err := root.Run(ctx, os.Args); err != nil {
		if errors.Is(err, apperrors.ErrPromptCancelled) {
			ui.PrintInfo(os.Stdout, translations.GetMessage("app.cancelled", 0, nil))
			return
		}
		ui.HandleAppError(os.Stderr, err, translations)
		stop()
		os.Exit(1)
	}
}

// initializeApp builds the root command. The translations are returned with
// any error after they load, so startup failures can be reported in the
// user's language.
func initializeApp() (*cli.Command, *i18n.Translations, error) {
	lang := cfg.DetectLanguage()
	translations, err := i18n.NewTranslations(lang, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, translations, apperrors.ErrHomeDir.WithError(err)
	}

	catalogURL := catalog.DefaultCatalogURL
	var dispatcher *app.Gittr
	provider := func(ctx context.Context) (command.Dispatcher, error) {
		if dispatcher != nil {
			return dispatcher, nil
		}
		g, err := newDispatcher(ctx, homeDir, catalogURL, translations)
		if err != nil {
			return nil, err
		}
		dispatcher = g
		return g, nil
	}

	registerCommand := registry.NewRegistry(translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"commit", commit.NewCommitCommandFactory(provider)},
		{"reconfig", config.NewReconfigCommandFactory(provider)},
		{"list", emoji.NewListCommandFactory(provider)},
		{"search", emoji.NewSearchCommandFactory(provider)},
		{"update", emoji.NewUpdateCommandFactory(provider)},
		{"version", version.NewVersionCommandFactory(provider)},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, translations, err
		}
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))

	return &cli.Command{
		Name:                  appversion.AppName,
		Usage:                 translations.GetMessage("app.usage", 0, nil),
		Version:               appversion.Version,
		Commands:              commands,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flags.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flags.verbose", 0, nil),
			},
			&cli.StringFlag{
				Name:    "lang",
				Value:   lang,
				Usage:   translations.GetMessage("flags.lang", 0, nil),
				Sources: cli.EnvVars("GITTR_LANG"),
			},
			&cli.StringFlag{
				Name:    "catalog-url",
				Value:   catalog.DefaultCatalogURL,
				Usage:   translations.GetMessage("flags.catalog_url", 0, nil),
				Sources: cli.EnvVars("GITTR_CATALOG_URL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			l := logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			ctx = logger.WithLogger(ctx, l)

			if err := translations.SetLanguage(cfg.GetLocaleConfig(cmd.String("lang"))); err != nil {
				logger.Warn(ctx, "keeping the detected language", "lang", cmd.String("lang"), "error", err)
			}
			catalogURL = cmd.String("catalog-url")
			return ctx, nil
		},
	}, translations, nil
}

func newDispatcher(ctx context.Context, homeDir, catalogURL string, t *i18n.Translations) (*app.Gittr, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error resolving the working directory: %w", err)
	}

	deps := app.Deps{
		ConfigPath: cfg.DefaultPath(homeDir),
		Remote:     catalog.NewHTTPSource(catalogURL, httpclient.NewDefaultHTTPClient()),
		Git:        git.NewGitService(cwd),
		UI:         ui.NewTerminal(os.Stdin, os.Stdout, t),
		Clipboard:  clipboard.System{},
		T:          t,
		Out:        os.Stdout,
	}

	c, err := cache.NewCache(cache.DefaultDir(homeDir))
	if err != nil {
		logger.Warn(ctx, "catalog cache disabled", "error", err)
	} else {
		deps.Cache = c
	}

	return app.New(ctx, deps)
}
